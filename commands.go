package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jakenesler/planningcenter/catalog"
	"github.com/jakenesler/planningcenter/client"
	"github.com/jakenesler/planningcenter/config"
	"github.com/jakenesler/planningcenter/internal"
	"github.com/jakenesler/planningcenter/pco"
	"github.com/jakenesler/planningcenter/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP tools over stdio",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	pc, err := client.New(cfg, pco.WithLogger(internal.Logger()), pco.WithUserAgent("planningcenter/"+version))
	if err != nil {
		return err
	}
	cat, err := catalog.New(pc.Catalog(), cfg.APIVersions)
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}
	internal.Logf("catalog has %d endpoints across %s", cat.Count(), strings.Join(cat.Apps(), ", "))

	s := server.NewMCPServer(
		"planningcenter",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions("Planning Center tools for the Services, Groups and People apps. Use list_endpoints or search_api to find endpoints, get_endpoint_details for their includes, orders, filters and where attributes, and call_api to make requests. Typed tools such as list_plans and search_people cover common lookups."),
	)
	tools.RegisterAll(s, cfg, pc, cat)

	internal.Logf("starting planningcenter MCP server (stdio)")
	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

var openapiFormat string

var openapiCmd = &cobra.Command{
	Use:         "openapi",
	Short:       "Print the OpenAPI document of the supported endpoints",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{"config": "none"},
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := catalog.Build(client.Describe(), config.DefaultAPIVersions)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}

		switch openapiFormat {
		case "json":
		case "yaml":
			if data, err = toYAML(data); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q (json or yaml)", openapiFormat)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
		return err
	},
}

// toYAML re-encodes a JSON document as YAML.
func toYAML(data []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return out, nil
}

var callFlags struct {
	include []string
	order   string
	filter  string
	where   map[string]string
	body    string
	all     bool
	limit   int
}

var callCmd = &cobra.Command{
	Use:   "call METHOD PATH",
	Short: "Make one API request and print the data with included resources stitched in",
	Example: `  planningcenter call GET /services/v2/service_types
  planningcenter call GET /people/v2/people --where search_name=ann --include emails
  planningcenter call GET /groups/v2/groups --all --limit 200`,
	Args: cobra.ExactArgs(2),
	RunE: runCall,
}

func init() {
	openapiCmd.Flags().StringVar(&openapiFormat, "format", "json", "output format: json or yaml")

	f := callCmd.Flags()
	f.StringSliceVar(&callFlags.include, "include", nil, "related resources to include")
	f.StringVar(&callFlags.order, "order", "", "sort attribute, prefix with - for descending")
	f.StringVar(&callFlags.filter, "filter", "", "named API filter")
	f.StringToStringVar(&callFlags.where, "where", nil, "attribute filters sent as where[attr] (attr=value)")
	f.StringVar(&callFlags.body, "body", "", "request body as JSON")
	f.BoolVar(&callFlags.all, "all", false, "follow pagination and print every item")
	f.IntVar(&callFlags.limit, "limit", 0, "stop after this many items (with --all)")
}

func runCall(cmd *cobra.Command, args []string) error {
	method, path := strings.ToUpper(args[0]), args[1]
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if method != http.MethodGet && !cfg.AllowDestructive {
		return fmt.Errorf("%s requests are disabled; set allow_destructive: true in the config to enable them", method)
	}

	pc, err := client.New(cfg, pco.WithLogger(internal.Logger()), pco.WithUserAgent("planningcenter/"+version))
	if err != nil {
		return err
	}
	p := pco.Params{Include: callFlags.include, Order: callFlags.order, Filter: callFlags.filter, Limit: callFlags.limit}
	if len(callFlags.where) > 0 {
		p.Where = callFlags.where
	}
	app, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")

	var items []json.RawMessage
	collection := true
	if method == http.MethodGet && callFlags.all {
		for raw, err := range pco.Stream(cmd.Context(), pco.NewApp(pc.API, app), path, p) {
			if err != nil {
				return err
			}
			items = append(items, raw)
		}
	} else {
		var body any
		if callFlags.body != "" {
			if !json.Valid([]byte(callFlags.body)) {
				return fmt.Errorf("invalid body JSON")
			}
			body = json.RawMessage(callFlags.body)
		}
		query, err := p.Values()
		if err != nil {
			return err
		}
		doc, err := pc.API.Do(cmd.Context(), pco.Request{App: app, Method: method, Path: path, Query: query, Body: body})
		if err != nil {
			return err
		}
		if items, err = pco.Stitch(doc); err != nil {
			return err
		}
		collection = doc.IsCollection()
	}

	var out any = items
	switch {
	case collection && items == nil:
		out = []json.RawMessage{}
	case !collection && len(items) == 0:
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s succeeded with no content\n", method, path)
		return nil
	case !collection:
		out = items[0]
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
