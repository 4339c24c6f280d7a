package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/samuelfneumann/tabular/agent/tabular/sarsa"
	"github.com/samuelfneumann/tabular/environment/envconfig"
	"github.com/samuelfneumann/tabular/environment/gridworld"
	"github.com/samuelfneumann/tabular/environment/maze"
	"github.com/samuelfneumann/tabular/experiment"
	"github.com/samuelfneumann/tabular/experiment/plot"
	"github.com/samuelfneumann/tabular/experiment/tracker"
)

func main() {
	configFile := flag.String("config", "", "experiment JSON config file "+
		"(default: built-in 5 x 5 grid world)")
	outDir := flag.String("out", ".", "directory to save results in")
	seed := flag.Uint64("seed", 192382, "random seed")
	progress := flag.Bool("progress", true, "show a progress bar")
	colors := flag.Bool("colors", true, "colour the rendered policy")
	flag.Parse()

	expConf, err := readConfig(*configFile)
	if err != nil {
		log.Fatalf("could not read config: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("could not create output directory: %v", err)
	}

	var series []plot.Series
	for i := 0; i < expConf.AgentConf.Len(); i++ {
		s, err := run(expConf, i, *seed, *outDir, *progress, *colors)
		if err != nil {
			log.Fatalf("config %d: %v", i, err)
		}
		series = append(series, s)
	}

	if err := writeHTML(filepath.Join(*outDir, "returns.html"),
		series); err != nil {
		log.Fatalf("could not write chart: %v", err)
	}

	png := filepath.Join(*outDir, "returns.png")
	if err := plot.PNG(png, "Episodic return", series...); err != nil {
		log.Fatalf("could not write chart: %v", err)
	}
}

// writeHTML writes the interactive learning curves of series to
// filename
func writeHTML(filename string, series []plot.Series) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := plot.HTML(f, "Episodic return", series...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// readConfig reads an experiment config from filename, or returns the
// default grid world experiment if filename is empty
func readConfig(filename string) (experiment.Config, error) {
	if filename == "" {
		return experiment.Config{
			Type:     experiment.OnlineExp,
			MaxSteps: 50_000,
			EnvConf:  envconfig.Default(),
			AgentConf: sarsa.NewConfigList(
				[]float64{0.5, 0.1},
				[]float64{0.9},
				[]float64{sarsa.DefaultBonusScale},
			),
		}, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return experiment.Config{}, err
	}

	var c experiment.Config
	if err := json.Unmarshal(data, &c); err != nil {
		return experiment.Config{}, err
	}
	return c, nil
}

// run runs the experiment with the agent config at index i, saves its
// returns and renders the learned greedy policy
func run(c experiment.Config, i int, seed uint64, outDir string,
	progress, colors bool) (plot.Series, error) {
	agentConf := c.AgentConf.At(i)
	returns := tracker.NewReturn(filepath.Join(outDir,
		fmt.Sprintf("returns_%d.bin", i)))
	lengths := tracker.NewEpisodeLength(filepath.Join(outDir,
		fmt.Sprintf("lengths_%d.bin", i)))

	exp, a, err := c.CreateExp(i, seed, returns, lengths)
	if err != nil {
		return plot.Series{}, err
	}

	log.Printf("running %v %+v", agentConf.Type(), agentConf)
	if online, ok := exp.(*experiment.Online); ok && progress {
		online.ShowProgress(os.Stdout, 50)
	}
	if err := exp.Run(); err != nil {
		return plot.Series{}, err
	}
	if err := exp.Save(); err != nil {
		return plot.Series{}, err
	}

	data := returns.Data()
	if summary, err := tracker.Summarize(data); err != nil {
		log.Printf("no episodes finished: %v", err)
	} else {
		log.Printf("returns: %v", summary)
	}
	if l := lengths.Data(); len(l) > 0 {
		log.Printf("episodes: %d, final episode length: %d", len(l),
			l[len(l)-1])
	}

	// Render the greedy policy in a grid world, or the final maze
	online, isOnline := exp.(*experiment.Online)
	learner, isSarsa := a.(*sarsa.Learner)
	if isOnline && isSarsa {
		switch e := online.Environment.(type) {
		case *gridworld.GridWorld:
			q := learner.Sarsa()
			err := gridworld.Render(os.Stdout, e, q.StateValue, q.BestAction,
				colors)
			if err != nil {
				return plot.Series{}, err
			}

		case *maze.Maze:
			fmt.Println(e)
		}
	}

	return plot.Series{Name: fmt.Sprintf("%+v", agentConf), Data: data}, nil
}
