package audit

import (
	"fmt"

	"adminpanel/internal/database"
	"adminpanel/internal/models"
)

const (
	ActionPostDelete = "post_delete"
	ActionUserDelete = "user_delete"
	ActionPostExport = "post_export"
)

type Service struct {
	db *database.DB
}

func NewService(db *database.DB) *Service {
	return &Service{db: db}
}

func (s *Service) LogAction(action, details string, success bool, ipAddress string) error {
	_, err := s.db.Exec(
		"INSERT INTO audit_logs (action, details, success, ip_address) VALUES (?, ?, ?, ?)",
		action, details, success, ipAddress,
	)
	if err != nil {
		return fmt.Errorf("failed to log action: %w", err)
	}
	return nil
}

func (s *Service) Recent(limit int) ([]models.AuditLog, error) {
	rows, err := s.db.Query(`
		SELECT id, action, COALESCE(details, ''), success, COALESCE(ip_address, ''), created_at
		FROM audit_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []models.AuditLog
	for rows.Next() {
		var log models.AuditLog
		if err := rows.Scan(&log.ID, &log.Action, &log.Details, &log.Success, &log.IPAddress, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
