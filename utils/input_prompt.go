package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/headstamp/headstamp/constants/lipgloss"
)

// ConfirmPrompt asks the user a yes/no question and reports the answer.
// Anything other than "y"/"yes" counts as no; EOF counts as no.
func ConfirmPrompt(reader *bufio.Reader, question string) (bool, error) {
	fmt.Print(lipgloss.BlueSky.Render(question + " (y/N): "))

	answer, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("error reading input: %w", err)
	}

	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}
