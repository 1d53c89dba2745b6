// Package config is a thin key/value lookup over an optional yaml file.
// Keys are dotted paths ("googlemaps.apikey"); a missing file or key just
// yields "", so every caller gets to have a sane default.
package config

import(
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

const kDefaultPath = "config.yaml"

// EnvVar names the environment variable that overrides the config file path.
const EnvVar = "ISSPASS_CONFIG"

var(
	once   sync.Once
	values map[string]string
)

// Get returns the value for a dotted key, or "" when the key (or the whole
// config file) is absent.
func Get(key string) string {
	once.Do(load)
	return values[key]
}

func load() {
	values = map[string]string{}

	path := os.Getenv(EnvVar)
	if path == "" { path = kDefaultPath }

	data,err := ioutil.ReadFile(path)
	if err != nil { return }  // no config file; callers fall back to defaults

	parsed,err := Parse(data)
	if err != nil {
		log.Printf("config: could not parse %s: %v", path, err)
		return
	}
	values = parsed
}

// Parse flattens nested yaml mappings into dotted keys, so
//   googlemaps:
//     apikey: xyz
// comes out as {"googlemaps.apikey":"xyz"}. Scalars are stringified.
func Parse(data []byte) (map[string]string, error) {
	tree := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}

	out := map[string]string{}
	flatten("", tree, out)
	return out, nil
}

func flatten(prefix string, tree map[string]interface{}, out map[string]string) {
	for k,v := range tree {
		key := k
		if prefix != "" { key = prefix+"."+k }

		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case nil:
			out[key] = ""
		default:
			out[key] = fmt.Sprintf("%v", val)
		}
	}
}
