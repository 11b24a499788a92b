package export

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// outline converts the captured page into Markdown for the README.
func outline(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	md, err := htmltomarkdown.ConvertNode(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(md)), nil
}
