package agent

// Agent represents a registered account identified by a caller-chosen id.
type Agent struct {
	AgentID      string `gorm:"primaryKey;type:text" json:"agent_id"`
	PasswordHash string `gorm:"not null;type:text" json:"-"`
}

// TableName returns the table name for the Agent entity.
func (Agent) TableName() string {
	return "agents"
}
