package dataset

import "github.com/neocoretechs/imgclf/network"

// Samples converts the dataset to training samples. labels fixes the
// label→index mapping; pass the result of Labels() for the canonical
// ordering, or a subset/reordering to pin indices across runs. Instances
// whose label is absent from the list get index -1 and will never classify
// correctly.
func (d *Dataset) Samples(labels []string) []network.Sample {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	out := make([]network.Sample, len(d.instances))
	for i, inst := range d.instances {
		label, ok := index[inst.Label]
		if !ok {
			label = -1
		}
		out[i] = network.Sample{Input: inst.Pixels, Label: label}
	}

	return out
}
