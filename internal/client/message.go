package client

// Role identifies who produced a rendered message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is one rendered chat entry. Never mutated after creation.
type Message struct {
	Role    Role
	Text    string
	IsError bool
}
