package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/catseek/catalogue"
)

// Concurrency limit for fetching remaining pages with --all
const maxPageFetchers = 5

var (
	searchSource    string
	searchLimit     int
	searchOffset    int
	searchSort      string
	searchTypes     []string
	searchAudiences []string
	searchDateFrom  int
	searchDateTo    int
	searchLocations []string
	searchLanguages []string
	searchAvailable bool
	searchFiction   bool
	searchAll       bool
	searchJSON      bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <keywords>",
	Short: "Search the catalogue for titles",
	Long: `Search the catalogue for titles matching the given keywords.
Optional flags narrow the search by source, material type, audience,
publish date, location, language, availability and fiction status.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchSource, "source", "", "restrict to a content source (e.g. overdrive)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "page size (default from config)")
	searchCmd.Flags().IntVarP(&searchOffset, "offset", "o", 0, "record offset to start from")
	searchCmd.Flags().StringVar(&searchSort, "sort", "", "sort fields (e.g. title)")
	searchCmd.Flags().StringSliceVar(&searchTypes, "material-types", nil, "material type codes (e.g. BK,DVD)")
	searchCmd.Flags().StringSliceVar(&searchAudiences, "audiences", nil, "intended audience codes (e.g. ADULT,TEEN)")
	searchCmd.Flags().IntVar(&searchDateFrom, "date-from", 0, "earliest publish date (YYYYMMDD)")
	searchCmd.Flags().IntVar(&searchDateTo, "date-to", 0, "latest publish date (YYYYMMDD)")
	searchCmd.Flags().StringSliceVar(&searchLocations, "locations", nil, "branch location codes (e.g. AMKPL)")
	searchCmd.Flags().StringSliceVar(&searchLanguages, "languages", nil, "language codes (e.g. ENG,CHI)")
	searchCmd.Flags().BoolVar(&searchAvailable, "available", false, "only titles currently available")
	searchCmd.Flags().BoolVar(&searchFiction, "fiction", false, "only fiction titles")
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "fetch every page of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print the parsed response as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	req := catalogue.SearchRequest{
		Keywords:          strings.Join(args, " "),
		Source:            searchSource,
		Limit:             searchLimit,
		SortFields:        searchSort,
		Offset:            searchOffset,
		MaterialTypes:     searchTypes,
		IntendedAudiences: searchAudiences,
		DateFrom:          searchDateFrom,
		DateTo:            searchDateTo,
		Locations:         searchLocations,
		Languages:         searchLanguages,
	}

	if req.Limit == 0 {
		req.Limit = cfg.Search.Limit
	}
	if cmd.Flags().Changed("available") {
		req.Availability = &searchAvailable
	}
	if cmd.Flags().Changed("fiction") {
		req.Fiction = &searchFiction
	}

	logger.Info().Str("keywords", req.Keywords).Msg("Searching catalogue")

	ctx := cmd.Context()
	resp, err := client.SearchTitlesDetailed(ctx, req)
	if err != nil {
		return err
	}

	switch p := resp.Parsed.(type) {
	case *catalogue.SearchTitlesResponse:
		titles := p.Titles
		if searchAll && p.HasMoreRecords {
			rest, err := fetchRemainingPages(ctx, req, p)
			if err != nil {
				return err
			}
			titles = append(titles, rest...)
		}
		if searchJSON {
			return printJSON(p, titles)
		}
		printResults(p, titles)
	case nil:
		fmt.Printf("Catalogue returned unrecognized status %d.\n", resp.StatusCode)
	default:
		return apiError(p)
	}

	return nil
}

// fetchRemainingPages fetches every page after the first concurrently.
// Page slots are pre-allocated so results stay in offset order.
func fetchRemainingPages(ctx context.Context, req catalogue.SearchRequest, first *catalogue.SearchTitlesResponse) ([]catalogue.Title, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = catalogue.DefaultLimit
	}

	remaining := first.TotalRecords - req.Offset - len(first.Titles)
	if remaining <= 0 {
		return nil, nil
	}
	pageCount := (remaining + limit - 1) / limit

	pages := make([][]catalogue.Title, pageCount)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPageFetchers)

	for i := 0; i < pageCount; i++ {
		i := i
		g.Go(func() error {
			pageReq := req
			pageReq.Offset = req.Offset + len(first.Titles) + i*limit

			payload, err := client.SearchTitles(ctx, pageReq)
			if err != nil {
				return err
			}

			page, ok := payload.(*catalogue.SearchTitlesResponse)
			if !ok {
				return apiError(payload)
			}

			logger.Debug().
				Int("offset", pageReq.Offset).
				Int("count", page.Count).
				Msg("Fetched catalogue page")

			pages[i] = page.Titles
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var titles []catalogue.Title
	for _, page := range pages {
		titles = append(titles, page...)
	}
	return titles, nil
}

// printResults displays titles and facets in a human-readable form
func printResults(resp *catalogue.SearchTitlesResponse, titles []catalogue.Title) {
	if len(titles) == 0 {
		fmt.Println("No titles found matching the search criteria.")
		return
	}

	fmt.Printf("\nShowing %d of %d records:\n", len(titles), resp.TotalRecords)
	fmt.Println(strings.Repeat("-", 80))

	for _, title := range titles {
		fmt.Printf("• %s", title.Title)
		if title.Author != "" {
			fmt.Printf(" by %s", title.Author)
		}
		fmt.Println()
		if title.Format != nil {
			fmt.Printf("  Format: %s\n", title.Format.Name)
		}
		if title.BRN != nil {
			fmt.Printf("  BRN: %d\n", *title.BRN)
		}
		if len(title.ISBNs) > 0 {
			fmt.Printf("  ISBN: %s\n", strings.Join(title.ISBNs, ", "))
		}
		if title.PublishDate != "" {
			fmt.Printf("  Published: %s\n", title.PublishDate)
		}
	}

	if len(resp.Facets) > 0 {
		fmt.Println("\nFacets:")
		for _, facet := range resp.Facets {
			fmt.Printf("  %s:\n", facet.Name)
			for _, value := range facet.Values {
				fmt.Printf("    • %s (%d)\n", value.Value, value.Count)
			}
		}
	}

	if next, ok := resp.NextOffset(); ok && !searchAll {
		fmt.Printf("\nMore records available; rerun with --offset %d or --all.\n", next)
	}
}

// printJSON dumps the response with the (possibly merged) title list
func printJSON(resp *catalogue.SearchTitlesResponse, titles []catalogue.Title) error {
	out := *resp
	out.Titles = titles

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(&out)
}

// apiError converts a typed error payload into a CLI error
func apiError(payload catalogue.Payload) error {
	switch p := payload.(type) {
	case *catalogue.BadRequest:
		return fmt.Errorf("bad request: %s", p.Message)
	case *catalogue.Unauthorized:
		return fmt.Errorf("authentication failed: %s", p.Message)
	case *catalogue.NotFound:
		return fmt.Errorf("not found: %s", p.Message)
	case *catalogue.MethodNotAllowed:
		return fmt.Errorf("method not allowed: %s", p.Message)
	case *catalogue.TooManyRequests:
		return fmt.Errorf("rate limited: %s", p.Message)
	case *catalogue.InternalServerError:
		return fmt.Errorf("server error: %s", p.Message)
	case *catalogue.NotImplemented:
		return fmt.Errorf("not implemented: %s", p.Message)
	case *catalogue.ServiceUnavailable:
		return fmt.Errorf("service unavailable: %s", p.Message)
	default:
		return fmt.Errorf("unexpected catalogue payload %T", payload)
	}
}
