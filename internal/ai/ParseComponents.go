package ai

import (
	"embed"
	"encoding/json"
	"log"
	"sort"

	aiutils "react_scaffold_server/internal/ai/utils"
	"react_scaffold_server/internal/types"
	"react_scaffold_server/internal/utils"
)

//go:embed fallback/Header.js fallback/Footer.js
var fallbackFS embed.FS

// Keys under which models tend to nest the component object.
var wrapperKeys = []string{"components", "files", "result", "code", "output"}

// FallbackComponents returns the built-in Header and Footer components.
// The result is a fresh map with identical contents on every call.
func FallbackComponents() types.ComponentMap {
	components := types.ComponentMap{}
	for _, name := range []string{"Header", "Footer"} {
		source, err := fallbackFS.ReadFile("fallback/" + name + ".js")
		if err != nil {
			// Embedded at build time; a read failure means a broken binary.
			panic("missing fallback component " + name + ": " + err.Error())
		}
		components[name] = string(source)
	}
	return components
}

// ParseComponents interprets the component-map response of the model.
// Anything that does not yield at least one usable component becomes the
// fallback variant.
func ParseComponents(llmOutput string) types.ComponentResult {
	cleanedOutput := aiutils.CleanLLMOutput(llmOutput)

	components, ok := decodeComponentMap([]byte(cleanedOutput))
	if !ok {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal([]byte(cleanedOutput), &wrapper); err == nil {
			for _, key := range wrapperKeys {
				raw, found := wrapper[key]
				if !found {
					continue
				}
				if components, ok = decodeComponentMap(raw); ok {
					log.Printf("Parsed component map nested under key '%s'.", key)
					break
				}
			}
		}
	}

	if !ok {
		log.Printf("WARN: component response is not a JSON object of name to code, using fallback components. Cleaned output: %.200s", cleanedOutput)
		return types.ComponentResult{Kind: types.ComponentsFallback, Components: FallbackComponents()}
	}

	usable := types.ComponentMap{}
	for name, source := range components {
		if !utils.IsSafePathElement(name) {
			log.Printf("WARN: dropping component %q: not usable as a file name", name)
			continue
		}
		if source == "" {
			log.Printf("WARN: component %s has an empty source", name)
		}
		usable[name] = source
	}
	if len(usable) == 0 {
		log.Println("WARN: component response held no usable components, using fallback components.")
		return types.ComponentResult{Kind: types.ComponentsFallback, Components: FallbackComponents()}
	}

	return types.ComponentResult{Kind: types.ComponentsParsed, Components: usable}
}

func decodeComponentMap(data []byte) (types.ComponentMap, bool) {
	var components types.ComponentMap
	if err := json.Unmarshal(data, &components); err != nil || components == nil {
		return nil, false
	}
	return components, true
}

// ComponentNames returns the names of a component map in sorted order.
func ComponentNames(components types.ComponentMap) []string {
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
