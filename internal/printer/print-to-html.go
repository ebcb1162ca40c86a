package printer

// PrintToHTML joins rendered diagnostics into one document fragment.
func PrintToHTML(results []Result) PrintResult {
	p := &printer{}
	for i, r := range results {
		if i > 0 {
			p.println("<hr>")
		}
		p.println(r.HTML)
	}
	return PrintResult{Output: p.output}
}
