package shell

const banner = `
╔══════════ ≪ * ≫ ══════════╗

       Welcome to mysh!

      Use at your own risk

╚══════════ ≪ * ≫ ══════════╝
`

// Banner prints the startup greeting.
func (s *Shell) Banner() {
	s.Printer.Outf(Cyan, "%s", banner)
}
