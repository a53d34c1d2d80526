package simpledb

//go:generate mockgen -source=interfaces_test.go -destination=mock_interfaces_test.go -package=simpledb

type backendImpl interface {
	Backend
}
