package registry

// CategoryPort pairs a category tag with the fixed port its HTTP/SSE server
// listens on. Unique on both sides (spec §3 Category descriptor).
type CategoryPort struct {
	Category string
	Port     uint16
}

// CategoryPorts is the closed set of categories this gateway knows about and
// the fixed port assigned to each one. Ports run 30437-30452; 30452 is held
// in reserve for a future category so the rest never need renumbering.
var CategoryPorts = []CategoryPort{
	{"agent_delegation", 30437},
	{"browser", 30438},
	{"claude_agent", 30439},
	{"config", 30440},
	{"database", 30441},
	{"filesystem", 30442},
	{"git", 30443},
	{"github", 30444},
	{"introspection", 30445},
	{"memory", 30446},
	{"process", 30447},
	{"prompt", 30448},
	{"reasoning", 30449},
	{"terminal", 30450},
	{"web_crawl", 30451},
}

// portByCategory is built from CategoryPorts at package init for O(1) lookups.
var portByCategory map[string]uint16

func init() {
	portByCategory = make(map[string]uint16, len(CategoryPorts))
	for _, cp := range CategoryPorts {
		portByCategory[cp.Category] = cp.Port
	}
}

// PortFor returns the fixed port for a category and whether it is known.
func PortFor(category string) (uint16, bool) {
	port, ok := portByCategory[category]
	return port, ok
}

// KnownCategory reports whether category is one of the closed set.
func KnownCategory(category string) bool {
	_, ok := portByCategory[category]
	return ok
}

// Categories returns the category tags in declaration order.
func Categories() []string {
	out := make([]string, 0, len(CategoryPorts))
	for _, cp := range CategoryPorts {
		out = append(out, cp.Category)
	}
	return out
}
