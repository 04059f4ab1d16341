package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"homenest/internal/contracts/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const schemasRoot = "payloads"

// Contract keys as produced by generateKeyFromPath.
const (
	PropertyPayloadV1 = "PropertyPayload/1.0.0"
	ReviewPayloadV1   = "ReviewPayload/1.0.0"
	ActivityPayloadV1 = "ActivityPayload/1.0.0"
)

var compiledSchemas = mustCompileSchemas(schemas.SchemasFS)

func mustCompileSchemas(fsys fs.FS) map[string]*jsonschema.Schema {
	compiled, err := compileSchemas(fsys)
	if err != nil {
		panic(err)
	}
	return compiled
}

// compileSchemas registers every schema as a resource first so they may $ref each other.
func compileSchemas(fsys fs.FS) (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	err := fs.WalkDir(fsys, schemasRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking schema resources: %w", err)
	}

	compiled := make(map[string]*jsonschema.Schema, len(paths))
	for _, path := range paths {
		key := generateKeyFromPath(path)
		if key == "" {
			return nil, fmt.Errorf("schema path %s does not follow payloads/<name>/v<major>.json", path)
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		compiled[key] = schema
	}
	return compiled, nil
}

// generateKeyFromPath turns "payloads/property/v1.json" into "PropertyPayload/1.0.0".
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, schemasRoot+"/")
	trimmed = strings.TrimSuffix(trimmed, ".json")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[1], "v") {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString("Payload")

	version := strings.TrimPrefix(parts[1], "v") + ".0.0"
	return fmt.Sprintf("%s/%s", name.String(), version)
}

// Validate checks a JSON document against the contract registered under key.
func Validate(key string, body []byte) error {
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema '%s' not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// Keys lists the registered contracts.
func Keys() []string {
	keys := make([]string, 0, len(compiledSchemas))
	for k := range compiledSchemas {
		keys = append(keys, k)
	}
	return keys
}
