package terminal

// Contact addresses rendered by the contact command.
const (
	ContactEmail    = "alexcp.hernandez@gmail.com"
	ContactGitHub   = "https://github.com/Alex-TheLuchador"
	ContactLinkedIn = "https://www.linkedin.com/in/itsalexh/"
)

// ContactLine builds the structured contact block: Email, GitHub, LinkedIn, one per row.
func ContactLine() Line {
	return Rich(
		Text("Email: "),
		Link(ContactEmail, "mailto:"+ContactEmail, false),
		Break(),
		Text("GitHub: "),
		Link("github.com/Alex-TheLuchador", ContactGitHub, true),
		Break(),
		Text("LinkedIn: "),
		Link("linkedin.com/in/itsalexh", ContactLinkedIn, true),
	)
}

// EchoLine renders a submitted command the way the prompt shows it.
func EchoLine(cmd string) Line {
	return Rich(Input(EchoPrefix + cmd))
}

// WelcomeLines is the banner a fresh session starts with.
func WelcomeLines() []Line {
	return []Line{
		Rich(
			Text("Welcome to A Legendary Engineer's eXperience ("),
			Highlight("A.L.E.X"),
			Text(")."),
		),
		Rich(
			Text("This is a creation of "),
			Highlight("Alex Hernandez"),
			Text(" - "),
			Highlight("Data and AI Systems Engineer"),
		),
		Rich(
			Text("To see list of commands, type: "),
			Highlight(CommandHelp),
		),
	}
}
