package pipeline

import (
	"encoding/base64"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ImageLoader returns the bytes and Content-Type of the image named by a
// src value with the inline prefix removed.
type ImageLoader func(name string) (data []byte, contentType string, err error)

// InlineImages replaces img[src] values starting with prefix by data URIs
// so the document renders without a file server. Images the loader cannot
// provide keep their original src.
func InlineImages(htmlContent, prefix string, load ImageLoader) (string, error) {
	if prefix == "" || load == nil {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	inlineNode(doc, prefix, load)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the tree back; fragments render children only.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func inlineNode(n *html.Node, prefix string, load ImageLoader) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		for i, attr := range n.Attr {
			if attr.Key != "src" || !strings.HasPrefix(attr.Val, prefix) {
				continue
			}
			data, contentType, err := load(strings.TrimPrefix(attr.Val, prefix))
			if err != nil {
				continue
			}
			n.Attr[i].Val = "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		inlineNode(c, prefix, load)
	}
}
