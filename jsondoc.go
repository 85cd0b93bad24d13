// Package jsondoc parses JSON once and reads it by path.
//
// The engine lives in the subpackages: parse builds a node arena, doc opens
// it behind cursors and encode writes values back out. This package holds
// the one-shot helpers and the process wide default configuration.
//
// # Usage
//
//	v, err := jsondoc.Load(data)
//	if err != nil {
//	    return err
//	}
//	err = jsondoc.Dump(v, os.Stdout, jsondoc.WithFormat(format.YAMLFormat))
//
//	// one value from a large document
//	n, err := jsondoc.Fetch(data, "/array/1/num")
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/doc - documents and cursors
//   - github.com/signadot/jsondoc/parse - parser
//   - github.com/signadot/jsondoc/value - materialized values
//   - github.com/signadot/jsondoc/encode - JSON and YAML output
package jsondoc
