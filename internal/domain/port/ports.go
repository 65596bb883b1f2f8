package port

// Registry looks up registered ports by name.
// Implementations return the first port registered under the name.
type Registry interface {
	Add(port *Port)
	FindByName(name string) (*Port, bool)
	All() []*Port
}
