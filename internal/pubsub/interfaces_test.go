package pubsub

//go:generate mockgen -source=interfaces_test.go -destination=mock_interfaces_test.go -package=pubsub

type writerImpl interface {
	messageWriter
}

type readerImpl interface {
	messageReader
}
