// Package proto holds the wire definitions. Generated code lands under
// gen/proto and is produced by the directive below.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative insights/v1/insights.proto
