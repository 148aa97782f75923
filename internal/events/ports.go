package events

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Conn . Conn
type Conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}
