// Command objxserver starts a REST server that merges records posted to it
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/merge"
	"github.com/lyraproj/objx/objx"
	"github.com/lyraproj/objx/record"
	"github.com/lyraproj/objx/types"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newCommand()
	err := cmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

var (
	logLevel string
	addr     string
	sslKey   string
	sslCert  string
	port     int
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: `Server - Start an objx REST server`,
		Long: `Server - Start a REST server that merges records.
  Responds to POST requests under the /merge, /clone, and /isobject endpoints`,
		SilenceErrors: true,
		PreRun:        initialize,
		RunE:          startServer,
		Args:          cobra.NoArgs}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`, `error/warn/info/debug`)
	flags.StringVar(&addr, `addr`, ``, `ip address to listen on`)
	flags.StringVar(&sslKey, `ssl-key`, ``, `ssl private key`)
	flags.StringVar(&sslCert, `ssl-cert`, ``, `ssl certificate`)
	flags.IntVar(&port, `port`, 8080, `port number to listen to`)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	issue.IncludeStacktrace(logLevel == `debug`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `objx-server`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func startServer(cmd *cobra.Command, _ []string) error {
	e := CreateRouter(hclog.Default())
	e.HideBanner = true
	e.Logger.SetOutput(cmd.OutOrStdout())
	address := addr + `:` + strconv.Itoa(port)
	if sslCert != `` && sslKey != `` {
		return e.StartTLS(address, sslCert, sslKey)
	}
	return e.Start(address)
}

type mergeRequest struct {
	Target  *record.Hash   `json:"target"`
	Sources []*record.Hash `json:"sources"`
}

// CreateRouter creates the echo.Echo that serves the objx RESTful service
func CreateRouter(log hclog.Logger) *echo.Echo {
	e := echo.New()
	e.Use(requestLogger(log))

	badRequest := func(c echo.Context, err error) error {
		log.Debug(`bad request`, `path`, c.Request().URL.Path, `error`, err)
		return c.JSON(http.StatusBadRequest, map[string]string{`message`: err.Error()})
	}

	doMerge := func(c echo.Context) error {
		var req mergeRequest
		var result api.Record
		err := objx.Try(func() error {
			strategy := merge.GetStrategy(c.Param(`strategy`))
			if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
				return err
			}
			if req.Target == nil {
				return api.Error(api.NotARecord, issue.H{`arg`: `target`})
			}
			sources := make([]api.Record, len(req.Sources))
			for i, s := range req.Sources {
				if s != nil {
					sources[i] = s
				}
			}
			result = objx.Merge(strategy, req.Target, sources, nil)
			return nil
		})
		if err != nil {
			return badRequest(c, err)
		}
		return c.JSON(http.StatusOK, result)
	}

	doClone := func(c echo.Context) error {
		var source *record.Hash
		if err := json.NewDecoder(c.Request().Body).Decode(&source); err != nil {
			return badRequest(c, err)
		}
		return c.JSON(http.StatusOK, merge.Clone(source))
	}

	doIsObject := func(c echo.Context) error {
		var value interface{}
		if err := json.NewDecoder(c.Request().Body).Decode(&value); err != nil {
			return badRequest(c, err)
		}
		pure, _ := strconv.ParseBool(c.QueryParam(`pure`))
		return c.JSON(http.StatusOK, map[string]bool{`object`: types.IsObject(value, pure)})
	}

	e.POST(`/merge/:strategy`, doMerge)
	e.POST(`/clone`, doClone)
	e.POST(`/isobject`, doIsObject)
	return e
}

func requestLogger(log hclog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Info(`request`,
				`method`, c.Request().Method,
				`path`, c.Request().URL.Path,
				`status`, c.Response().Status,
				`duration`, time.Since(start))
			return err
		}
	}
}
