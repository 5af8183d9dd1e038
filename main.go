package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ConniAU/n8n-pdf-parse/config"
	"github.com/ConniAU/n8n-pdf-parse/layout"
	"github.com/ConniAU/n8n-pdf-parse/pipeline"
)

// Server identity constants.
const (
	serverName    = "pdf-parse"
	serverVersion = "0.1.0"
)

// MCP tool parameter key constants — shared between schema definitions and
// argument extraction so a typo in one place is caught by the other.
const (
	argURI             = "uri"
	argText            = "text"
	argMode            = "mode"
	argPages           = "pages"
	argSplitPages      = "split_pages"
	argIncludeMetadata = "include_metadata"
)

func main() {
	// The stdio transport owns stdout; diagnostics go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Load()
	pipe := pipeline.New(cfg, logger)

	s := server.NewMCPServer(serverName, serverVersion)
	registerTools(s, pipe, cfg)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("server error: %v\n", err)
	}
}

// registerTools binds MCP tool definitions to their handlers.
func registerTools(s *server.MCPServer, pipe *pipeline.Pipeline, cfg *config.Config) {
	// extract_pdf_text — resolve, decode, and reformat a PDF document
	s.AddTool(
		mcp.NewTool("extract_pdf_text",
			mcp.WithDescription("Extract text from a PDF and reformat it to approximate the "+
				"original visual layout. Pass an absolute file path or an http:// / https:// URL. "+
				"Modes: "+modeList()+". Returns a JSON record with the text (or per-page array), "+
				"page count, optional metadata, and statistics."),
			mcp.WithString(argURI,
				mcp.Required(),
				mcp.Description("Absolute file path or http/https URL of the PDF"),
			),
			mcp.WithString(argMode,
				mcp.Description("Formatting mode ("+modeList()+"); default "+cfg.DefaultMode),
			),
			mcp.WithString(argPages,
				mcp.Description("Page selection, e.g. '1-5' or '1,3,5'; default all pages"),
			),
			mcp.WithBoolean(argSplitPages,
				mcp.Description("Return an array with one element per page instead of a single string"),
			),
			mcp.WithBoolean(argIncludeMetadata,
				mcp.Description("Attach the document information dictionary to the result"),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			uri, ok := req.Params.Arguments[argURI].(string)
			if !ok || uri == "" {
				return mcp.NewToolResultError(argURI + " is required"), nil
			}
			opts := pipeline.Options{
				Mode:  resolveMode(req.Params.Arguments, cfg),
				Pages: stringArg(req.Params.Arguments, argPages),
			}
			opts.SplitPages, _ = req.Params.Arguments[argSplitPages].(bool)
			opts.IncludeMetadata, _ = req.Params.Arguments[argIncludeMetadata].(bool)

			res, err := pipe.Process(ctx, uri, opts)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(out)), nil
		},
	)

	// format_text — reformat already-extracted text
	s.AddTool(
		mcp.NewTool("format_text",
			mcp.WithDescription("Reformat raw extracted text with one of the layout-recovery "+
				"modes ("+modeList()+") without touching a PDF."),
			mcp.WithString(argText,
				mcp.Required(),
				mcp.Description("Raw text to reformat"),
			),
			mcp.WithString(argMode,
				mcp.Description("Formatting mode; default "+cfg.DefaultMode),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			text, ok := req.Params.Arguments[argText].(string)
			if !ok {
				return mcp.NewToolResultError(argText + " is required"), nil
			}
			mode := resolveMode(req.Params.Arguments, cfg)
			return mcp.NewToolResultText(layout.Format(text, mode)), nil
		},
	)

	// get_extraction_info — list modes and configuration
	s.AddTool(
		mcp.NewTool("get_extraction_info",
			mcp.WithDescription("Return supported formatting modes and active configuration."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(extractionInfo(cfg)), nil
		},
	)
}

// resolveMode reads the mode argument, falling back to the configured
// default. Unknown mode names pass through to the formatter, which treats
// them as no-ops by contract.
func resolveMode(args map[string]interface{}, cfg *config.Config) layout.Mode {
	name := stringArg(args, argMode)
	if name == "" {
		name = cfg.DefaultMode
	}
	mode, _ := layout.ParseMode(name)
	return mode
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func modeList() string {
	modes := layout.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func extractionInfo(cfg *config.Config) string {
	return fmt.Sprintf(`# PDF Extraction Info

## Formatting Modes
- %s

## Configuration
- Default mode: %s
- Max file size: %d MB
- Fetch timeout: %s`,
		strings.ReplaceAll(modeList(), ", ", "\n- "),
		cfg.DefaultMode,
		cfg.MaxFileSizeMB(),
		cfg.FetchTimeout(),
	)
}
