package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/config"
	"github.com/symbody/symbody/internal/model"
	"github.com/symbody/symbody/internal/parts"
)

var (
	configFile string
	preset     string
	rearWheel  string
	frontWheel string
	ground     bool
	rider      bool
	simplify   bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "symbody",
		Short: "symbolic bicycle and rider dynamics",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	deriveCmd := &cobra.Command{
		Use:   "derive [model]",
		Short: "compose a model and derive its equations of motion",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDerive,
	}
	deriveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	deriveCmd.Flags().StringVar(&preset, "preset", "", "use preset composition")
	deriveCmd.Flags().StringVar(&rearWheel, "rear-wheel", config.DefaultWheel, "rear wheel kind")
	deriveCmd.Flags().StringVar(&frontWheel, "front-wheel", config.DefaultWheel, "front wheel kind")
	deriveCmd.Flags().BoolVar(&ground, "ground", false, "put the model on a ground plane with rolling tyres")
	deriveCmd.Flags().BoolVar(&rider, "rider", false, "mount a rider torso on the saddle")
	deriveCmd.Flags().BoolVar(&simplify, "simplify", true, "simplify printed expressions")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list registered model and connection kinds",
		RunE:  runList,
	}

	rootCmd.AddCommand(deriveCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// resolveConfig merges the config sources: preset or file first, then flags.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(args) == 1 {
		cfg.Model = args[0]
		cfg.Name = args[0]
	}
	if preset != "" {
		p := config.GetPreset(cfg.Model, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for model %q (have: %v)",
				preset, cfg.Model, config.ListPresets(cfg.Model))
		}
		applied := *p
		cfg = &applied
	}
	if cmd.Flags().Changed("rear-wheel") {
		cfg.RearWheel = rearWheel
	}
	if cmd.Flags().Changed("front-wheel") {
		cfg.FrontWheel = frontWheel
	}
	if cmd.Flags().Changed("ground") {
		cfg.Ground = ground
	}
	if cmd.Flags().Changed("rider") {
		cfg.Rider = rider
	}
	if cmd.Flags().Changed("simplify") {
		cfg.Simplify = simplify
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newWheel(kind, name string) (parts.WheelModel, error) {
	switch kind {
	case "knife_edge_wheel":
		return parts.NewKnifeEdgeWheel(name), nil
	case "toroidal_wheel":
		return parts.NewToroidalWheel(name), nil
	}
	return nil, fmt.Errorf("unknown wheel kind %q", kind)
}

// buildModel composes the root component described by the config.
func buildModel(cfg *config.Config) (model.Component, error) {
	if cfg.Model == "rolling_disc" {
		return parts.NewRollingDisc(cfg.Name)
	}

	rw, err := newWheel(cfg.RearWheel, "rear_wheel")
	if err != nil {
		return nil, err
	}
	fw, err := newWheel(cfg.FrontWheel, "front_wheel")
	if err != nil {
		return nil, err
	}
	opts := []parts.BicycleOption{parts.WithRearWheel(rw), parts.WithFrontWheel(fw)}
	if cfg.Ground {
		opts = append(opts, parts.WithGround(parts.NewFlatGround("ground")))
	}
	name := cfg.Name
	if cfg.Rider {
		name = "bicycle"
	}
	bicycle, err := parts.NewBicycle(name, opts...)
	if err != nil {
		return nil, err
	}
	if !cfg.Rider {
		return bicycle, nil
	}
	return parts.NewBicycleRider(cfg.Name, bicycle, parts.NewRiderTorso("rider"))
}

func runDerive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	log := newLogger()

	root, err := buildModel(cfg)
	if err != nil {
		return err
	}
	engine := algebra.NewEngine()
	asm := model.NewAssembler(root, engine, model.WithLogger(log))
	if err := asm.DefineAll(); err != nil {
		return err
	}
	sys, err := asm.Aggregate()
	if err != nil {
		return err
	}
	eom, err := sys.Solve()
	if err != nil {
		return err
	}
	printEOM(cfg, sys, eom)
	return nil
}

func printEOM(cfg *config.Config, sys *model.System, eom *algebra.EOM) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "model\t%s\n", cfg.Model)
	fmt.Fprintf(w, "degrees of freedom\t%d\n", eom.DegreesOfFreedom())
	fmt.Fprintf(w, "constraints\t%d\n", len(eom.Nonholonomic))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "coordinate\tcontributed by")
	for _, q := range eom.Coordinates {
		fmt.Fprintf(w, "%s\t%s\n", q.Name(), sys.Origin(q))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "speed\tcontributed by")
	for _, u := range eom.Speeds {
		fmt.Fprintf(w, "%s\t%s\n", u.Name(), sys.Origin(u))
	}
	fmt.Fprintln(w)

	mass := make([][]string, len(eom.MassMatrix))
	forcing := make([]string, len(eom.Forcing))
	if cfg.Simplify {
		mass = eom.SimplifiedMass()
		forcing = eom.SimplifiedForcing()
	} else {
		for i, row := range eom.MassMatrix {
			mass[i] = make([]string, len(row))
			for j, e := range row {
				mass[i][j] = e.String()
			}
		}
		for i, e := range eom.Forcing {
			forcing[i] = e.String()
		}
	}

	fmt.Fprintln(w, "mass matrix")
	for i, row := range mass {
		for j, entry := range row {
			fmt.Fprintf(w, "M[%d][%d]\t%s\n", i, j, entry)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "forcing")
	for i, f := range forcing {
		fmt.Fprintf(w, "F[%d]\t%s\n", i, f)
	}
}

func runList(*cobra.Command, []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "model kind\tdescription")
	for _, kind := range model.ModelKinds() {
		fmt.Fprintf(w, "%s\t%s\n", kind, model.KindDescription(kind))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "connection kind\tdescription")
	for _, kind := range model.ConnectionKinds() {
		fmt.Fprintf(w, "%s\t%s\n", kind, model.KindDescription(kind))
	}
	return nil
}
