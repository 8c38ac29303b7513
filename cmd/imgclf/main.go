// Command imgclf trains and runs the fully connected image classifier.
//
// Subcommands:
//
//	imgclf train  -data DIR -model FILE [-config FILE]   gradient training
//	imgclf evolve -data DIR -model FILE [-config FILE]   evolutionary search
//	imgclf infer  -model FILE IMAGE...                   classify images
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/neocoretechs/imgclf/activation"
	"github.com/neocoretechs/imgclf/dataset"
	"github.com/neocoretechs/imgclf/network"
	"github.com/neocoretechs/imgclf/pool"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("imgclf: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "train":
		err = runTrain(os.Args[2:])
	case "evolve":
		err = runEvolve(os.Args[2:])
	case "infer":
		err = runInfer(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: imgclf <train|evolve|infer> [flags]")
}

// newRand builds the run's random source from the configured seed.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// loadTrainingData loads the dataset and reports its shape.
func loadTrainingData(dir string, cfg config) (*dataset.Dataset, []string, error) {
	d, err := dataset.Load(dir, dataset.Options{Edge: cfg.Edge})
	if err != nil {
		return nil, nil, err
	}
	labels := d.Labels()
	log.Printf("loaded %d images, %d labels %v", d.Size(), len(labels), labels)

	return d, labels, nil
}

// buildTopology maps the configuration to a network topology.
func buildTopology(cfg config, numLabels int, rng *rand.Rand) (network.Config, error) {
	act, err := activation.Parse(cfg.Activation)
	if err != nil {
		return network.Config{}, err
	}

	return network.Config{
		NumInputs:    cfg.Edge * cfg.Edge,
		NumOutputs:   numLabels,
		HiddenNodes:  cfg.HiddenNodes,
		HiddenLayers: cfg.HiddenLayers,
		Activation:   act,
		Rand:         rng,
	}, nil
}

// runTrain performs gradient training over the dataset and saves the model.
func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	dataDir := fs.String("data", "", "directory of labeled training images")
	modelPath := fs.String("model", "model.yaml", "output model file")
	configPath := fs.String("config", "", "YAML configuration file")
	fs.Parse(args)
	if *dataDir == "" {
		return fmt.Errorf("train: -data is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	d, labels, err := loadTrainingData(*dataDir, cfg)
	if err != nil {
		return err
	}

	rng := newRand(cfg.Seed)
	topo, err := buildTopology(cfg, len(labels), rng)
	if err != nil {
		return err
	}
	n, err := network.New(topo)
	if err != nil {
		return err
	}

	samples := d.Samples(labels)
	exec := pool.NewFixed(cfg.PoolWidth)
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		rng.Shuffle(len(samples), func(i, j int) {
			samples[i], samples[j] = samples[j], samples[i]
		})
		loss, err := n.TrainEpoch(samples, cfg.LearningRate, exec)
		if err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		log.Printf("epoch %d/%d mean loss %.6f", epoch, cfg.Epochs, loss)
	}

	acc, err := n.Accuracy(samples)
	if err != nil {
		return err
	}
	log.Printf("training accuracy %.2f%%", acc*100)

	return saveModel(*modelPath, n, labels)
}

// runEvolve searches weights by evolution, scored by training accuracy.
func runEvolve(args []string) error {
	fs := flag.NewFlagSet("evolve", flag.ExitOnError)
	dataDir := fs.String("data", "", "directory of labeled training images")
	modelPath := fs.String("model", "model.yaml", "output model file")
	configPath := fs.String("config", "", "YAML configuration file")
	fs.Parse(args)
	if *dataDir == "" {
		return fmt.Errorf("evolve: -data is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	d, labels, err := loadTrainingData(*dataDir, cfg)
	if err != nil {
		return err
	}

	rng := newRand(cfg.Seed)
	topo, err := buildTopology(cfg, len(labels), rng)
	if err != nil {
		return err
	}

	samples := d.Samples(labels)
	gen := 0
	best, fitness, err := network.Evolve(network.EvolveConfig{
		Topology:     topo,
		Population:   cfg.Population,
		Generations:  cfg.Generations,
		Elite:        cfg.Elite,
		MutationProb: cfg.MutationProb,
		MutationRate: cfg.MutationRate,
		Rand:         rng,
	}, func(n *network.Network) float64 {
		acc, err := n.Accuracy(samples)
		if err != nil {
			return 0
		}
		gen++
		return acc
	})
	if err != nil {
		return err
	}
	log.Printf("best fitness %.4f after %d evaluations", fitness, gen)

	return saveModel(*modelPath, best, labels)
}

// runInfer classifies each image argument with a saved model.
func runInfer(args []string) error {
	fs := flag.NewFlagSet("infer", flag.ExitOnError)
	modelPath := fs.String("model", "model.yaml", "model file to load")
	edge := fs.Int("edge", dataset.DefaultEdge, "square image edge used at training time")
	fs.Parse(args)
	if fs.NArg() == 0 {
		return fmt.Errorf("infer: at least one image path is required")
	}

	n, labels, err := loadModel(*modelPath)
	if err != nil {
		return err
	}

	for _, path := range fs.Args() {
		d, err := dataset.Load(path, dataset.Options{Edge: *edge})
		if err != nil {
			return err
		}
		for _, inst := range d.Instances() {
			out, err := n.FeedForward(inst.Pixels)
			if err != nil {
				return fmt.Errorf("%s: %w", inst.Name, err)
			}
			idx := network.Classify(out)
			label := "?"
			if idx >= 0 && idx < len(labels) {
				label = labels[idx]
			}
			probs := network.Softmax(out)
			fmt.Printf("%s\t%s\t%.4f\n", inst.Name, label, probs[idx])
		}
	}

	return nil
}
