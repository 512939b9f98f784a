package builder

// Method tags used as error prefixes.
const (
	MethodValues         = "Values"
	MethodBuild          = "Build"
	MethodSinglyLinear   = "SinglyLinear"
	MethodDoublyLinear   = "DoublyLinear"
	MethodSinglyCircular = "SinglyCircular"
	MethodDoublyCircular = "DoublyCircular"
)

// Defaults for the ascending generator used when no ValueFn is configured.
const (
	DefaultStart = 1
	DefaultStep  = 1
)

// minSize is the smallest accepted element count; zero builds an empty list.
const minSize = 0
