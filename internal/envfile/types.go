package envfile

// Var is a single variable declaration from a dotenv file.
type Var struct {
	Name     string
	Value    string // after quote and inline-comment stripping
	Empty    bool   // value is blank or whitespace-only
	Optional bool   // declaration carried a "# optional" comment
}

// File is an ordered set of parsed variables. Lookup is by name;
// iteration follows first-declaration order even when a later duplicate
// overwrites the record.
type File struct {
	names []string
	vars  map[string]Var
}

// NewFile returns an empty File.
func NewFile() *File {
	return &File{vars: make(map[string]Var)}
}

// set inserts or overwrites a variable, keeping the first-seen position.
func (f *File) set(v Var) {
	if _, ok := f.vars[v.Name]; !ok {
		f.names = append(f.names, v.Name)
	}
	f.vars[v.Name] = v
}

// Get returns the variable with the given name.
func (f *File) Get(name string) (Var, bool) {
	v, ok := f.vars[name]
	return v, ok
}

// Has reports whether a variable with the given name was declared.
func (f *File) Has(name string) bool {
	_, ok := f.vars[name]
	return ok
}

// Names returns the variable names in declaration order.
func (f *File) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Len returns the number of distinct variables.
func (f *File) Len() int {
	return len(f.names)
}
