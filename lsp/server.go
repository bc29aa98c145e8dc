// Package lsp serves the arithmetic expression language over the
// Language Server Protocol. Documents are synchronized incrementally:
// every change event becomes a syntax.Edit applied to the document's
// tree before an incremental re-parse, and syntax errors are
// published as diagnostics.
package lsp

import (
	"github.com/dhamidi/arbor/arith"
	"github.com/dhamidi/arbor/syntax"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "arbor"

var log = commonlog.GetLogger("arbor.lsp")

type LSPServer struct {
	docs    map[string]*document
	parser  *arith.Parser
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		docs:    make(map[string]*document),
		parser:  arith.NewParser(),
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindIncremental),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := &document{
		uri:  params.TextDocument.URI,
		text: []byte(params.TextDocument.Text),
	}
	doc.tree = ls.parser.Parse(doc.text, nil)
	ls.docs[doc.uri] = doc
	ls.publishDiagnostics(ctx, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc, ok := ls.docs[params.TextDocument.URI]
	if !ok {
		return nil
	}

	for _, change := range params.ContentChanges {
		switch change := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				doc.text = []byte(change.Text)
				doc.tree = nil
				continue
			}
			start := doc.offsetAt(int(change.Range.Start.Line), int(change.Range.Start.Character))
			end := doc.offsetAt(int(change.Range.End.Line), int(change.Range.End.Character))
			if err := doc.replace(start, end, []byte(change.Text)); err != nil {
				log.Errorf("rejecting change to %s: %s", doc.uri, err.Error())
				return nil
			}
		case protocol.TextDocumentContentChangeEventWhole:
			doc.text = []byte(change.Text)
			doc.tree = nil
		}
	}

	oldTree := doc.tree
	doc.tree = ls.parser.Parse(doc.text, oldTree)
	if oldTree != nil {
		stats := ls.parser.Stats()
		if ranges, err := oldTree.ChangedRanges(doc.tree); err == nil {
			log.Debugf("reparsed %s: %d nodes reused, %d changed ranges",
				doc.uri, stats.ReusedNodes, len(ranges))
		}
	}
	ls.publishDiagnostics(ctx, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	delete(ls.docs, params.TextDocument.URI)
	return nil
}

// publishDiagnostics reports every ERROR node in the document's tree.
func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, doc *document) {
	diagnostics := []protocol.Diagnostic{}
	severity := protocol.DiagnosticSeverityError
	source := lsName

	for _, node := range errorNodes(doc.tree.RootNode()) {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    toProtocolRange(node),
			Severity: &severity,
			Source:   &source,
			Message:  "syntax error",
		})
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Diagnostics: diagnostics,
	})
}

func errorNodes(root syntax.Node) []syntax.Node {
	var out []syntax.Node
	var walk func(n syntax.Node)
	walk = func(n syntax.Node) {
		if n.Kind() == "ERROR" {
			out = append(out, n)
			return
		}
		for i := 0; i < n.ChildCount(); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return out
}

func toProtocolRange(n syntax.Node) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      protocol.UInteger(n.StartPoint().Row),
			Character: protocol.UInteger(n.StartPoint().Column),
		},
		End: protocol.Position{
			Line:      protocol.UInteger(n.EndPoint().Row),
			Character: protocol.UInteger(n.EndPoint().Column),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
