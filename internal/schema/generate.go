package schema

// The ent client is generated into internal/repo. Run `go generate ./...`
// after changing any schema in this package.

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ../repo .
