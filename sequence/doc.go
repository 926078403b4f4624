// Package sequence provides numeric sequence containers, loading
// helpers, and an in-memory store for named sequences.
//
// # Creating a Sequence
//
// Create a sequence from a slice (every element must be a finite real
// number):
//
//	seq, err := sequence.New([]float64{15.2, 16.9, 15.3, 14.9})
//
// # Using the Store
//
// A Store holds multiple named sequences and is safe for concurrent
// use. Sequences are retrieved by name, by insertion index, or by the
// default selector (first loaded):
//
//	store := sequence.NewStore()
//	store.Load("gatlin", values)
//
//	seq, err := store.Read(sequence.ByName("gatlin"))
//	seq, err = store.Read(sequence.ByIndex(0))
//	seq, err = store.Read(sequence.First())
//
//	store.Append(sequence.ByName("gatlin"), 14.0, 18.1)
//	store.Clear(sequence.ByName("gatlin"))
//
// # Loading from Files
//
// Load a single sequence from a CSV column:
//
//	opts := sequence.DefaultCSVOptions()
//	opts.Column = "y"
//	seq, err := sequence.LoadCSV("data.csv", opts)
//
// Load labeled sequences from a YAML dataset file:
//
//	data, err := sequence.LoadYAML("datasets.yaml")
//	store.LoadMap(data)
//
// # Errors
//
// Loading validates eagerly: any element that is not a finite real
// number fails with ErrNonNumeric, and reads that match nothing fail
// with ErrNoData. Both are sentinel errors usable with errors.Is.
package sequence
