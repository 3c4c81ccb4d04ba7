// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/oneconcern/playpub/pkg/changelog"
	"github.com/oneconcern/playpub/pkg/core"
	"github.com/oneconcern/playpub/pkg/dlogger"
	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type flagsT struct {
	root struct {
		credential  string
		gcsCred     string
		packageName string
		track       string
		changeLog   string
		logLevel    string
		metrics     bool
		editID      string
	}
	build struct {
		artifact    string
		expansion   string
		releaseName string
		status      string
	}
	image struct {
		imageType string
		path      string
		language  string
	}
	promote struct {
		target string
		status string
	}
	config struct {
		output string
	}
}

var playpubFlags = flagsT{}

const (
	packageFlag = "package"
	trackFlag   = "track"
	logLevel    = "loglevel"
	metricsFlag = "metrics"
)

func addPackageFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&playpubFlags.root.packageName, packageFlag, "", "The package name of the application, e.g. com.example.app (required)")
	return packageFlag
}

func addCredentialFlag(cmd *cobra.Command) string {
	credential := "credential"
	cmd.PersistentFlags().StringVar(&playpubFlags.root.credential, credential, "",
		"The location of the service account key: a local path, or an http(s)://, gs:// or s3:// URL. Defaults to the application default credentials")
	return credential
}

func addGCSCredentialFlag(cmd *cobra.Command) string {
	c := "gcs-credential"
	cmd.PersistentFlags().StringVar(&playpubFlags.root.gcsCred, c, "",
		"The path of a service account key file used to read gs:// locations. Defaults to the application default credentials")
	return c
}

func addTrackFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&playpubFlags.root.track, trackFlag, model.InternalTrack.String(),
		"The track to update, or to promote from. One of: internal, alpha, beta, production")
	return trackFlag
}

func addChangeLogFlag(cmd *cobra.Command) string {
	c := "changelog"
	cmd.PersistentFlags().StringVar(&playpubFlags.root.changeLog, c, "", "The location of a JSON change log, attached as release notes")
	return c
}

func addLogLevel(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&playpubFlags.root.logLevel, logLevel, dlogger.LogLevelInfo, "The logging level. Levels by increasing order of verbosity: "+strings.Join(dlogger.Levels, ", "))
	return logLevel
}

func addMetricsFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().BoolVar(&playpubFlags.root.metrics, metricsFlag, false, "Print a summary of upload metrics when done")
	return metricsFlag
}

func addEditFlag(cmd *cobra.Command) string {
	e := "edit"
	cmd.PersistentFlags().StringVar(&playpubFlags.root.editID, e, "", "The ID of a pending edit to resume. A new edit is created when it does not exist")
	return e
}

func addArtifactFlag(cmd *cobra.Command) string {
	a := "artifact"
	cmd.Flags().StringVar(&playpubFlags.build.artifact, a, "", "The location of the app bundle (.aab) or package (.apk) to upload. Local paths may use wildcards, e.g. build/outputs/**/*.aab")
	return a
}

func addExpansionFlag(cmd *cobra.Command) string {
	e := "expansion"
	cmd.Flags().StringVar(&playpubFlags.build.expansion, e, "", "The location of the main expansion file (.obb) for a package")
	return e
}

func addReleaseNameFlag(cmd *cobra.Command) string {
	r := "release-name"
	cmd.Flags().StringVar(&playpubFlags.build.releaseName, r, core.DefaultReleaseName, "The descriptive name of the release")
	return r
}

func addStatusFlag(cmd *cobra.Command, target *string) string {
	s := "status"
	cmd.Flags().StringVar(target, s, model.StatusDraft.String(), "The status of the release. One of: draft, inProgress, halted, completed")
	return s
}

func addImageTypeFlag(cmd *cobra.Command) string {
	i := "image-type"
	cmd.Flags().StringVar(&playpubFlags.image.imageType, i, "", "The slot of the image on the store listing, e.g. icon, featureGraphic, phoneScreenshots")
	return i
}

func addImageFlag(cmd *cobra.Command) string {
	i := "image"
	cmd.Flags().StringVar(&playpubFlags.image.path, i, "", "The location of the image to upload")
	return i
}

func addLanguageFlag(cmd *cobra.Command) string {
	l := "language"
	cmd.Flags().StringVar(&playpubFlags.image.language, l, model.DefaultLanguage, "The language of the store listing")
	return l
}

func addTargetTrackFlag(cmd *cobra.Command) string {
	t := "target-track"
	cmd.Flags().StringVar(&playpubFlags.promote.target, t, "", "The track to promote the current release to")
	return t
}

func addOutputFlag(cmd *cobra.Command) string {
	o := "output"
	cmd.Flags().StringVar(&playpubFlags.config.output, o, "", "The path of the config file to write. Defaults to $HOME/.playpub/playpub.yaml")
	return o
}

func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("dev error: %v", err))
		}
	}
}

func changedFlag(name string) bool {
	f := rootCmd.PersistentFlags().Lookup(name)
	return f != nil && f.Changed
}

// resetFlags restores all flags of a command tree to their defaults
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

/** parameters struct from other formats */

// apply config file + env vars to structure used to parse cli flags
func (flags *flagsT) setDefaultsFromConfig(c *CLIConfig) {
	if flags.root.credential == "" {
		flags.root.credential = c.Credential
	}
	if flags.root.gcsCred == "" {
		flags.root.gcsCred = c.GCSCredential
	}
	if flags.root.packageName == "" {
		flags.root.packageName = c.Package
	}
	if !changedFlag(trackFlag) && c.Track != "" {
		flags.root.track = c.Track
	}
	if !changedFlag(logLevel) && c.LogLevel != "" {
		flags.root.logLevel = c.LogLevel
	}
	if !changedFlag(metricsFlag) && c.Metrics {
		flags.root.metrics = true
	}
}

/** combined config (file + env var) and parameters (pflags) */

type cliOptionInputs struct {
	config *CLIConfig
	params *flagsT

	onceLogger sync.Once
	logger     *zap.Logger
	onceStore  sync.Once
	store      storage.Store
}

func newCliOptionInputs(config *CLIConfig, params *flagsT) *cliOptionInputs {
	if config == nil {
		config = &CLIConfig{}
	}
	return &cliOptionInputs{
		config: config,
		params: params,
	}
}

/** combined config and parameters to internal objects */

func (in *cliOptionInputs) getLogger() (*zap.Logger, error) {
	var err error
	in.onceLogger.Do(func() {
		in.logger, err = dlogger.GetLogger(in.params.root.logLevel)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set log level: %v", err)
	}
	return in.logger, nil
}

// sourceStore resolves artifacts, images, change logs and credentials from their location
func (in *cliOptionInputs) sourceStore() storage.Store {
	in.onceStore.Do(func() {
		logger, _ := in.getLogger()
		in.store = newSourceStore(logger, in.params.root.gcsCred)
	})
	return in.store
}

func (in *cliOptionInputs) packageName() (string, error) {
	if in.params.root.packageName == "" {
		return "", fmt.Errorf("required flag %q not set", packageFlag)
	}
	return in.params.root.packageName, nil
}

func (in *cliOptionInputs) track() (model.TrackName, error) {
	return model.ParseTrackName(in.params.root.track)
}

func (in *cliOptionInputs) releaseNotes(ctx context.Context) ([]model.LocalizedText, error) {
	if in.params.root.changeLog == "" {
		return nil, nil
	}
	return changelog.Load(ctx, in.sourceStore(), in.params.root.changeLog)
}

func (in *cliOptionInputs) coreOpts() ([]core.Option, error) {
	logger, err := in.getLogger()
	if err != nil {
		return nil, err
	}
	return []core.Option{
		core.Logger(logger),
		core.Store(in.sourceStore()),
		core.ResumeEdit(in.params.root.editID),
	}, nil
}
