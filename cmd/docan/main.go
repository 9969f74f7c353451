package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"docanalysis/internal/app"
	"docanalysis/internal/config"
	"docanalysis/internal/db"
	"docanalysis/internal/domain"
	"docanalysis/internal/engine"
	"docanalysis/internal/logger"
	"docanalysis/internal/server"
	"docanalysis/internal/telemetry"
)

var rootCmd = &cobra.Command{
	Use:   "docan",
	Short: "Document analysis emulator",
	Long: `docan runs a local document analysis service and drives it from the shell.
- Workspace: a directory holding docanalysis.yml and the .docanalysis folder with the database and stored objects.
- Objects: documents, training manifests and job output live in buckets of the object store (filesystem or MinIO).
- Synchronous operations (detect, analyze, expense, id) return results at once.
- Jobs queue multi-page documents; 'docan serve' or 'docan job run' processes them.
- Adapters customize query answers; each trained version is tagged and evaluated.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(viper.GetString("log-level"), viper.GetString("log-format"), os.Stderr)
	},
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("DOCANALYSIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("actor-id", "local-user", "actor identifier recorded on events")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text or json)")
	for _, name := range []string{"workspace", "json", "actor-id", "log-level", "log-format"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func registerCommands() {
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(objectCmd())
	rootCmd.AddCommand(detectCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(expenseCmd())
	rootCmd.AddCommand(idCmd())
	rootCmd.AddCommand(jobCmd())
	rootCmd.AddCommand(adapterCmd())
	rootCmd.AddCommand(tagCmd())
	rootCmd.AddCommand(apiKeyCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(logCmd())
}

func configCmd() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Manage docanalysis.yml",
		Long:  "The config file sets the emulated region and account, request limits, the object store, roles and notification topics.",
	}
	cfg.AddCommand(configInitCmd())
	cfg.AddCommand(configShowCmd())
	cfg.AddCommand(configValidateCmd())
	return cfg
}

func configInitCmd() *cobra.Command {
	var account string
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default docanalysis.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace := viper.GetString("workspace")
			path := config.Path(workspace)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", path)
			}
			if _, err := db.EnsureWorkspace(workspace); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(config.GenerateDefault(account)), 0o644); err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&account, "account", "000000000000", "12 digit account id used in ARNs")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			return printJSON(cfg)
		},
	}
}

func configValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate docanalysis.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := config.Load(viper.GetString("workspace"))
			if viper.GetBool("json") {
				return printJSON(map[string]any{"ok": err == nil, "error": fmt.Sprint(err)})
			}
			if err != nil {
				return err
			}
			fmt.Println("config OK")
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var addr, basePath string
	var noRunner bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API, the job runner and the notifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logger.For("serve")
			shutdownTracing, err := telemetry.Setup(ctx, "docanalysis")
			if err != nil {
				return err
			}
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownTracing(sctx); err != nil {
					log.WithError(err).Warn("flush traces failed")
				}
			}()

			ws, err := app.Open(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			defer ws.Close()
			if !cmd.Flags().Changed("addr") && ws.Config.Server.Addr != "" {
				addr = ws.Config.Server.Addr
			}
			if !cmd.Flags().Changed("base-path") {
				basePath = ws.Config.Server.BasePath
			}
			e := ws.Engine
			handler, err := server.New(server.Config{
				Engine:   e,
				BasePath: basePath,
				Auth: server.AuthConfig{
					JWTSecret:     ws.Config.Auth.JWTSecret,
					AnonymousRole: ws.Config.Auth.Anonymous,
				},
			})
			if err != nil {
				return err
			}
			if !noRunner {
				go func() {
					if err := e.Run(ctx); err != nil {
						log.WithError(err).Error("job runner stopped")
					}
				}()
			}
			server.StartNotifier(ctx, e)

			srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}
			go func() {
				<-ctx.Done()
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(sctx)
			}()
			fmt.Printf("Serving document analysis API on http://%s%s (OpenAPI at %s/openapi.json, Swagger UI at %s/docs)\n",
				addr, basePath, basePath, basePath)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8720", "listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "", "API base path")
	cmd.Flags().BoolVar(&noRunner, "no-runner", false, "do not process queued jobs")
	return cmd
}

func objectCmd() *cobra.Command {
	obj := &cobra.Command{
		Use:   "object",
		Short: "Manage stored objects",
		Long:  "Objects are the S3Object locations operations read documents and manifests from and write job output to.",
	}
	obj.AddCommand(objectPutCmd())
	obj.AddCommand(objectListCmd())
	return obj
}

func objectPutCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "put <bucket> <file>",
		Short: "Upload a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			if name == "" {
				name = filepath.Base(args[1])
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				info, err := e.Store.Put(ctx, args[0], name, data, mimetype.Detect(data).String())
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(info)
				}
				fmt.Printf("s3://%s/%s %s %s version %s\n", info.Bucket, info.Name, humanize.IBytes(uint64(info.Size)), info.ContentType, info.Version)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "object name (defaults to the file name)")
	return cmd
}

func objectListCmd() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "list <bucket>",
		Short: "List objects in a bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				items, err := e.Store.List(ctx, args[0], prefix)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := newTable(table.Row{"Name", "Size", "Type", "Version"})
				for _, it := range items {
					tw.AppendRow(table.Row{it.Name, humanize.IBytes(uint64(it.Size)), it.ContentType, it.Version})
				}
				fmt.Println(tw.Render())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "name prefix")
	return cmd
}

func apiKeyCmd() *cobra.Command {
	keys := &cobra.Command{
		Use:   "apikey",
		Short: "Manage API keys",
		Long:  "API keys authenticate requests with the X-Api-Key header. Their actor gets the roles given at creation.",
	}
	keys.AddCommand(apiKeyCreateCmd())
	keys.AddCommand(apiKeyListCmd())
	keys.AddCommand(apiKeyDeleteCmd())
	return keys
}

func apiKeyCreateCmd() *cobra.Command {
	var actor, name string
	var roles []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if actor == "" {
				return fmt.Errorf("--actor required")
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				key, secret, err := e.CreateAPIKey(ctx, actor, name, roles)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(map[string]any{"id": key.ID, "actor_id": key.ActorID, "roles": key.Roles, "key": secret})
				}
				fmt.Printf("API key %s for %s (roles: %s)\n", key.ID, key.ActorID, strings.Join(key.Roles, ", "))
				fmt.Println(secret)
				fmt.Println("The key is shown once; store it now.")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&actor, "actor", "", "actor the key authenticates as")
	cmd.Flags().StringVar(&name, "name", "", "key name")
	cmd.Flags().StringSliceVar(&roles, "role", []string{"analyst"}, "roles granted to the actor")
	return cmd
}

func apiKeyListCmd() *cobra.Command {
	var actor string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				keys, err := e.ListAPIKeys(ctx, actor)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(keys)
				}
				tw := newTable(table.Row{"ID", "Actor", "Name", "Roles", "Created"})
				for _, k := range keys {
					tw.AppendRow(table.Row{k.ID, k.ActorID, k.Name, strings.Join(k.Roles, ","), since(k.CreatedAt)})
				}
				fmt.Println(tw.Render())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&actor, "actor", "", "only keys of this actor")
	return cmd
}

func apiKeyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				if err := e.DeleteAPIKey(ctx, args[0]); err != nil {
					return err
				}
				fmt.Println("deleted", args[0])
				return nil
			})
		},
	}
}

func tokenCmd() *cobra.Command {
	var actor string
	var roles []string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token with the configured JWT secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			if cfg.Auth.JWTSecret == "" {
				return fmt.Errorf("auth.jwt_secret is not set; configure it or export DOCANALYSIS_JWT_SECRET")
			}
			for _, r := range roles {
				if _, ok := cfg.Auth.Roles[r]; !ok {
					return fmt.Errorf("unknown role %s", r)
				}
			}
			token, err := server.IssueToken(cfg.Auth.JWTSecret, actor, roles, ttl)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(map[string]string{"token": token})
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&actor, "actor", "local-user", "token subject")
	cmd.Flags().StringSliceVar(&roles, "role", nil, "roles carried by the token (empty uses the stored roles of the actor)")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	return cmd
}

func logCmd() *cobra.Command {
	lg := &cobra.Command{Use: "log", Short: "Inspect the event log"}
	lg.AddCommand(logTailCmd())
	return lg
}

func logTailCmd() *cobra.Command {
	var n int
	var entityKind, entityID string
	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show recorded events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e engine.Engine) error {
				events, err := e.Repo.Events(ctx, entityKind, entityID, n)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(events)
				}
				printEvents(events)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&n, "n", 20, "number of events")
	cmd.Flags().StringVar(&entityKind, "entity-kind", "", "entity kind (job, adapter, adapter_version, human_loop)")
	cmd.Flags().StringVar(&entityID, "entity-id", "", "entity id")
	return cmd
}

// --- helpers ---

func withEngine(ctx context.Context, fn func(context.Context, engine.Engine) error) error {
	ws, err := app.Open(viper.GetString("workspace"))
	if err != nil {
		return err
	}
	defer ws.Close()
	return fn(ctx, ws.Engine)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header)
	return tw
}

func printEvents(events []domain.Event) {
	tw := newTable(table.Row{"ID", "When", "Type", "Entity", "Actor"})
	for _, evt := range events {
		tw.AppendRow(table.Row{evt.ID, since(evt.TS), evt.Type, evt.EntityKind + "/" + evt.EntityID, evt.ActorID})
	}
	fmt.Println(tw.Render())
}

// since renders a stored timestamp relative to now.
func since(ts string) string {
	t, err := domain.ParseStamp(ts)
	if err != nil {
		return ts
	}
	return humanize.Time(t)
}
