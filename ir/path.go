package ir

// At navigates a dotted path with bracketed indexes, e.g. "a.b[1].c".
// Navigation short-circuits to the absent view at the first missing
// segment, wrong-variant subscript, or malformed index. Keys may contain
// any character except '.' and '['.
func (v View) At(path string) View {
	cur := v
	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			i++
		case '[':
			i++
			start := i
			for i < len(path) && path[i] >= '0' && path[i] <= '9' {
				i++
			}
			if i == start || i == len(path) || path[i] != ']' {
				return View{}
			}
			idx := 0
			for _, c := range []byte(path[start:i]) {
				idx = idx*10 + int(c-'0')
			}
			i++
			cur = cur.Index(idx)
			if !cur.Ok() {
				return View{}
			}
		default:
			start := i
			for i < len(path) && path[i] != '.' && path[i] != '[' {
				i++
			}
			cur = cur.Key(path[start:i])
			if !cur.Ok() {
				return View{}
			}
		}
	}
	return cur
}
