package models

// PostRecord is the detail payload of /post/detail. The layout follows the
// Django serializer: model fields sit under Fields, attribution names are
// added next to them.
type PostRecord struct {
	PK              int64      `json:"pk"`
	Model           string     `json:"model"`
	Fields          PostFields `json:"fields"`
	CreatedUserName string     `json:"created_user_name"`
	UpdatedUserName string     `json:"updated_user_name"`
}

type PostFields struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Status        Flag   `json:"status"`
	CreatedUserID *int64 `json:"created_user_id,omitempty"`
	UpdatedUserID *int64 `json:"updated_user_id,omitempty"`
	DeletedUserID *int64 `json:"deleted_user_id,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	DeletedAt     string `json:"deleted_at,omitempty"`
}

const (
	StatusActive    = "Active"
	StatusNotActive = "Not Active"
)

// StatusLabel is the label the detail view shows. Only the number 1 is active.
func (p *PostRecord) StatusLabel() string {
	if p.Fields.Status.IsNumber(1) {
		return StatusActive
	}
	return StatusNotActive
}

// DialogStatusLabel is the label the delete dialog shows. Only the string "1"
// is active there.
func (p *PostRecord) DialogStatusLabel() string {
	if p.Fields.Status.IsString("1") {
		return StatusActive
	}
	return StatusNotActive
}
