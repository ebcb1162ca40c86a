package printer

type PrintResult struct {
	Output []byte
}

type printer struct {
	output []byte
}

func (p *printer) print(text string) {
	p.output = append(p.output, text...)
}

func (p *printer) println(text string) {
	p.print(text)
	p.output = append(p.output, '\n')
}
