// Command catalogctl queries the catalog proxy of a running coolstream server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"coolstream/client"
	"coolstream/models"
)

const usage = `usage: catalogctl [flags] <command> [args]

commands:
  search movie|tv <query>
  trending movie|tv [day|week]
  popular movie|tv [page]
  movie <id>
  tv <id>
  home
  genres movie|tv
`

func main() {
	var (
		baseURL = flag.String("base", "http://localhost:7777", "Base URL of the coolstream server")
		timeout = flag.Duration("timeout", 30*time.Second, "Request timeout")
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	c := client.New(*baseURL)
	out := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer out.Flush()

	if err := run(ctx, c, out, args); err != nil {
		out.Flush()
		log.Fatalf("catalogctl: %v", err)
	}
}

func run(ctx context.Context, c *client.Client, out *tabwriter.Writer, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "search":
		kind, err := kindArg(rest)
		if err != nil {
			return err
		}
		query := strings.Join(rest[1:], " ")
		if query == "" {
			return fmt.Errorf("search needs a query")
		}
		if kind == models.ContentTV {
			page, err := c.SearchTVShows(ctx, query)
			if err != nil {
				return err
			}
			printShows(out, page.Results)
			return nil
		}
		page, err := c.SearchMovies(ctx, query)
		if err != nil {
			return err
		}
		printMovies(out, page.Results)

	case "trending":
		kind, err := kindArg(rest)
		if err != nil {
			return err
		}
		var window models.TimeWindow
		if len(rest) > 1 {
			window = models.TimeWindow(rest[1])
		}
		if kind == models.ContentTV {
			page, err := c.TrendingTVShows(ctx, window)
			if err != nil {
				return err
			}
			printShows(out, page.Results)
			return nil
		}
		page, err := c.TrendingMovies(ctx, window)
		if err != nil {
			return err
		}
		printMovies(out, page.Results)

	case "popular":
		kind, err := kindArg(rest)
		if err != nil {
			return err
		}
		pageNum := 1
		if len(rest) > 1 {
			if pageNum, err = strconv.Atoi(rest[1]); err != nil {
				return fmt.Errorf("invalid page %q", rest[1])
			}
		}
		if kind == models.ContentTV {
			page, err := c.PopularTVShows(ctx, pageNum)
			if err != nil {
				return err
			}
			printShows(out, page.Results)
			fmt.Fprintf(out, "\npage %d of %d\n", page.Page, page.TotalPages)
			return nil
		}
		page, err := c.PopularMovies(ctx, pageNum)
		if err != nil {
			return err
		}
		printMovies(out, page.Results)
		fmt.Fprintf(out, "\npage %d of %d\n", page.Page, page.TotalPages)

	case "movie":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		d, err := c.MovieDetails(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t(%s)\n", d.Title, year(d.ReleaseDate))
		if d.Tagline != "" {
			fmt.Fprintf(out, "%s\n", d.Tagline)
		}
		fmt.Fprintf(out, "runtime\t%d min\n", d.Runtime)
		fmt.Fprintf(out, "rating\t%.1f (%d votes)\n", d.VoteAverage, d.VoteCount)
		fmt.Fprintf(out, "genres\t%s\n", genreNames(d.Genres))
		fmt.Fprintf(out, "cast\t%s\n", castNames(d.Cast))
		fmt.Fprintf(out, "watch\t%s\n", d.StreamingURLs.Vidsrc)

	case "tv":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		d, err := c.TVShowDetails(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t(%s)\n", d.Name, year(d.FirstAirDate))
		fmt.Fprintf(out, "seasons\t%d (%d episodes)\n", d.NumberOfSeasons, d.NumberOfEpisodes)
		fmt.Fprintf(out, "rating\t%.1f (%d votes)\n", d.VoteAverage, d.VoteCount)
		fmt.Fprintf(out, "genres\t%s\n", genreNames(d.Genres))
		fmt.Fprintf(out, "cast\t%s\n", castNames(d.Cast))
		fmt.Fprintf(out, "watch\t%s\n", d.StreamingURLs.Vidsrc)

	case "home":
		home, err := c.Home(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "# trending movies")
		printMovies(out, home.TrendingMovies.Results)
		fmt.Fprintln(out, "\n# trending tv")
		printShows(out, home.TrendingTV.Results)

	case "genres":
		kind, err := kindArg(rest)
		if err != nil {
			return err
		}
		genres, err := c.Genres(ctx, kind)
		if err != nil {
			return err
		}
		for _, g := range genres {
			fmt.Fprintf(out, "%d\t%s\n", g.ID, g.Name)
		}

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func kindArg(args []string) (models.ContentType, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("missing content type (movie or tv)")
	}
	kind, err := models.ParseContentType(args[0])
	if err != nil {
		return "", err
	}
	return kind, nil
}

func idArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func printMovies(out *tabwriter.Writer, movies []models.Movie) {
	fmt.Fprintln(out, "ID\tTITLE\tYEAR\tRATING\tGENRES")
	for _, m := range movies {
		fmt.Fprintf(out, "%d\t%s\t%s\t%.1f\t%s\n", m.ID, m.Title, year(m.ReleaseDate), m.VoteAverage,
			strings.Join(models.GenreNames(models.ContentMovie, m.GenreIDs), ", "))
	}
}

func printShows(out *tabwriter.Writer, shows []models.TVShow) {
	fmt.Fprintln(out, "ID\tNAME\tYEAR\tRATING\tGENRES")
	for _, s := range shows {
		fmt.Fprintf(out, "%d\t%s\t%s\t%.1f\t%s\n", s.ID, s.Name, year(s.FirstAirDate), s.VoteAverage,
			strings.Join(models.GenreNames(models.ContentTV, s.GenreIDs), ", "))
	}
}

func genreNames(genres []models.Genre) string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

func castNames(cast []models.CastMember) string {
	names := make([]string, 0, 5)
	for i, m := range cast {
		if i == 5 {
			break
		}
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

func year(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return "-"
}
