package telomere

// DisplayLabel upper-cases the first letter of name when it is an ASCII
// lower-case letter and leaves the rest untouched.
func DisplayLabel(name string) string {
	if name == "" {
		return name
	}
	c := name[0]
	if c < 'a' || c > 'z' {
		return name
	}
	return string(c-'a'+'A') + name[1:]
}
