package platform

// MessageKind is the Windows Installer message type used to route a log
// line (INSTALLMESSAGE_*).
type MessageKind uint32

const (
	MessageError      MessageKind = 0x01000000
	MessageWarning    MessageKind = 0x02000000
	MessageInfo       MessageKind = 0x04000000
	MessageActionData MessageKind = 0x09000000
)

// Session is the installer host capability handed to a custom action:
// property access plus message routing.
type Session interface {
	Property(name string) (string, error)
	SetProperty(name, value string) error
	Message(kind MessageKind, text string) error
}
