package main

import "strings"

// helpText renders the usage screen.
func helpText() string {
	var b strings.Builder

	b.WriteString("\n" + headerStyle.Render("Termai - Terminal AI Assistant") + "\n")
	b.WriteString("A lightweight CLI tool for asking Gemini from the terminal.\n\n")

	b.WriteString(sectionStyle.Render("Usage:") + "\n")
	b.WriteString("  termai [OPTIONS] \"YOUR QUERY\"\n")
	b.WriteString("  cat file.txt | termai [OPTIONS] \"OPTIONAL PROMPT\"\n\n")

	b.WriteString(sectionStyle.Render("Options:") + "\n")
	b.WriteString("  " + flagStyle.Render("--config") + "      Open configuration file (edit API key, model, prompts)\n")
	b.WriteString("  " + flagStyle.Render("--debug") + "       Enable debug mode (show raw status codes and responses)\n")
	b.WriteString("  " + flagStyle.Render("--markdown") + "    Render the reply as markdown (terminal output only)\n")
	b.WriteString("  " + flagStyle.Render("--help, -h") + "    Show this help message\n\n")

	b.WriteString(sectionStyle.Render("Examples:") + "\n")
	b.WriteString("  termai \"How do I unzip a tar file?\"\n")
	b.WriteString("  termai --config\n")
	b.WriteString("  cat error.log | termai \"Explain this error briefly\"\n")

	return b.String()
}
