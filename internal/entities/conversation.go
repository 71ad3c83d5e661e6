package entities

// Role identifies who authored a transcript turn
type Role string

// Transcript roles
const (
	RoleUser      Role = "user"
	RoleCharacter Role = "character"
)

// Turn is one transcript entry as presented to prompts
type Turn struct {
	Role    Role   `json:"role" yaml:"role"`
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

// Message is a raw conversation entry from the host chat
type Message struct {
	IsUser  bool   `json:"is_user" yaml:"is_user"`
	Name    string `json:"name,omitempty" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}
