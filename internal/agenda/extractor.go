package agenda

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"setlister/internal/logging"
	"setlister/internal/services"
)

// Link is a folder reference extracted from the agenda document. Order is the
// zero-based position of the link as encountered; duplicates are kept.
type Link struct {
	Order    int
	FolderID string
	Title    string
}

// Exporter is the slice of the Drive API the extractor needs.
type Exporter interface {
	ExportHTML(ctx context.Context, fileID string) ([]byte, error)
}

// Extractor reads folder links from an agenda document exported as HTML.
// TableNumber zero scans the whole document; a positive value restricts
// extraction to the Nth table (1-indexed), row-then-column order.
type Extractor struct {
	exporter    Exporter
	logger      *slog.Logger
	documentID  string
	tableNumber int
}

// NewExtractor builds an Extractor for the given agenda document.
func NewExtractor(exporter Exporter, logger *slog.Logger, documentID string, tableNumber int) *Extractor {
	return &Extractor{
		exporter:    exporter,
		logger:      logging.NewComponentLogger(logger, "agenda"),
		documentID:  documentID,
		tableNumber: tableNumber,
	}
}

// LinkedFolders returns folder links in the exact order they appear in the
// document or the selected table. A section without qualifying links yields
// an empty slice, not an error.
func (e *Extractor) LinkedFolders(ctx context.Context) ([]Link, error) {
	logger := logging.WithContext(ctx, e.logger)

	data, err := e.exporter.ExportHTML(ctx, e.documentID)
	if err != nil {
		return nil, services.Wrap(services.ErrExternal, "extract-links", "export agenda", e.documentID, err)
	}

	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, services.Wrap(services.ErrExternal, "extract-links", "parse agenda html", e.documentID, err)
	}

	scope := root
	if e.tableNumber > 0 {
		scope = nthTable(root, e.tableNumber)
		if scope == nil {
			logger.Error("table not found in agenda document",
				logging.Int("table_number", e.tableNumber))
			return nil, nil
		}
	}

	var links []Link
	forEachAnchor(scope, func(anchor *html.Node, href string) {
		folderID := FolderIDFromHref(href)
		if folderID == "" {
			// Link may not point at a folder.
			logger.Debug("no folder id found in link, skipping",
				logging.String("link_text", anchorText(anchor)))
			return
		}
		links = append(links, Link{
			Order:    len(links),
			FolderID: folderID,
			Title:    anchorText(anchor),
		})
	})

	logger.Info("extracted folder links",
		logging.Int("count", len(links)),
		logging.Int("table_number", e.tableNumber))
	return links, nil
}

// folderIDPattern matches folder ids in links as they appear in HTML exported
// through the Drive API.
var folderIDPattern = regexp.MustCompile(`drive\.google\.com/(?:[^?#]*/)?folders/([^/?&#]+)`)

// FolderIDFromHref extracts a Drive folder id from a hyperlink target,
// unwrapping the google.com/url redirect the HTML export wraps links in.
// It returns the empty string when the target is not a folder link.
func FolderIDFromHref(href string) string {
	target := href
	if parsed, err := url.Parse(href); err == nil {
		host := strings.ToLower(parsed.Hostname())
		if (host == "www.google.com" || host == "google.com") && parsed.Path == "/url" {
			if wrapped := parsed.Query().Get("q"); wrapped != "" {
				target = wrapped
			}
		}
	}

	matches := folderIDPattern.FindStringSubmatch(target)
	if matches == nil {
		return ""
	}
	return matches[1]
}

// nthTable returns the Nth (1-indexed) table element in document order.
func nthTable(root *html.Node, n int) *html.Node {
	count := 0
	var found *html.Node
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if found != nil {
			return
		}
		if node.Type == html.ElementNode && node.Data == "table" {
			count++
			if count == n {
				found = node
				return
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(root)
	return found
}

// forEachAnchor walks the subtree in document order and invokes fn for every
// anchor element carrying an href attribute.
func forEachAnchor(root *html.Node, fn func(anchor *html.Node, href string)) {
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "a" {
			for _, attr := range node.Attr {
				if attr.Key == "href" && attr.Val != "" {
					fn(node, attr.Val)
					break
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(root)
}

// anchorText collects the visible text inside an anchor element.
func anchorText(anchor *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(anchor)
	return strings.TrimSpace(sb.String())
}
