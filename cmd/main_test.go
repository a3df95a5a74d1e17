package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"react_scaffold_server/internal/api"
	"react_scaffold_server/internal/scaffold"
)

func TestListCommand(t *testing.T) {
	generated := t.TempDir()
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GENERATED_DIR", generated)

	store, err := scaffold.NewOSStore(generated)
	require.NoError(t, err)
	require.NoError(t, store.WriteScaffold("react_project_cli"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list", "react_project_cli"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, []string{
		".babelrc",
		"package.json",
		"public/index.html",
		"src/index.css",
		"src/index.js",
		"webpack.config.js",
	}, strings.Fields(out.String()))
}

func TestListCommandUnknownProject(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GENERATED_DIR", filepath.Join(t.TempDir(), "generated"))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"list", "react_project_missing"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.ErrorIs(t, err, scaffold.ErrProjectNotFound)
}

func TestGenerateCommandRequiresImage(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"generate"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "image" not set`)
}

// scriptedChat answers chat completions with the given contents in order.
func scriptedChat(t *testing.T, contents ...string) *httptest.Server {
	t.Helper()

	var mu sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		if r.URL.Path != "/v1/chat/completions" || len(contents) == 0 {
			http.Error(w, `{"error":{"message":"unexpected request"}}`, http.StatusInternalServerError)
			return
		}
		next := contents[0]
		contents = contents[1:]

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: next},
			}},
		})
	}))
	t.Cleanup(server.Close)

	return server
}

func TestGenerateCommand(t *testing.T) {
	llm := scriptedChat(t,
		"A storefront with a product grid.",
		"const App = () => <div/>;\nexport default App;",
		`{"ProductGrid": "const ProductGrid = () => <ul/>;", "Cart": "const Cart = () => <aside/>;"}`,
	)

	generated := t.TempDir()
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GENERATED_DIR", generated)
	t.Setenv("LLM_BASE_URL", llm.URL+"/v1")

	image := filepath.Join(t.TempDir(), "storefront.png")
	require.NoError(t, os.WriteFile(image, []byte("\x89PNG\r\n\x1a\nimage"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", "--image", image})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		imagePath = ""
		generateCmd.Flags().Lookup("image").Changed = false
	})

	require.NoError(t, rootCmd.Execute())

	var resp api.UploadImageResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp), out.String())
	assert.Equal(t, "A storefront with a product grid.", resp.ImageDescription)
	assert.Equal(t, "react_project_storefront", resp.ProjectName)
	assert.Equal(t, filepath.Join(generated, "react_project_storefront"), resp.ProjectPath)
	assert.Equal(t, []string{"Cart", "ProductGrid"}, resp.Components)

	for _, rel := range []string{"package.json", "src/App.js", "src/components/Cart.js", "src/components/ProductGrid.js"} {
		_, err := os.Stat(filepath.Join(generated, "react_project_storefront", filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}

	grid, err := os.ReadFile(filepath.Join(generated, "react_project_storefront", "src", "components", "ProductGrid.js"))
	require.NoError(t, err)
	assert.Equal(t, "const ProductGrid = () => <ul/>;", string(grid))
}
