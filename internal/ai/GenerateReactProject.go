package ai

import (
	"context"
	"fmt"
	"log"
	"path"

	"react_scaffold_server/internal/scaffold"
	"react_scaffold_server/internal/types"
)

// GenerateReactProject materializes a React project for description under
// projectName. Steps run in order and stop at the first error; files written
// before the failure are left in place.
func (g *Generator) GenerateReactProject(ctx context.Context, description, projectName string) (*types.GeneratedProject, error) {
	if err := scaffold.ValidateProjectName(projectName); err != nil {
		return nil, err
	}
	log.Printf("Generating React project %s", projectName)

	// 1. Directories and static configuration
	if err := g.store.WriteScaffold(projectName); err != nil {
		return nil, fmt.Errorf("failed to write scaffold for %s: %w", projectName, err)
	}

	// 2. Root component
	appSource, err := g.GenerateComponent(ctx, "App", description)
	if err != nil {
		return nil, err
	}
	if err := g.store.WriteFile(projectName, scaffold.AppFile, appSource); err != nil {
		return nil, err
	}

	// 3. Component map, falling back to Header/Footer
	result, err := g.GenerateComponents(ctx, description)
	if err != nil {
		return nil, err
	}
	if result.Kind == types.ComponentsFallback {
		log.Printf("WARN: project %s uses fallback components", projectName)
	}

	names := ComponentNames(result.Components)
	for _, name := range names {
		rel := path.Join(scaffold.ComponentsDir, name+".js")
		if err := g.store.WriteFile(projectName, rel, result.Components[name]); err != nil {
			return nil, err
		}
	}

	log.Printf("React project %s generated with %d components (%s)", projectName, len(names), result.Kind)
	return &types.GeneratedProject{
		Name:         projectName,
		Path:         g.store.ProjectPath(projectName),
		Components:   names,
		UsedFallback: result.Kind == types.ComponentsFallback,
	}, nil
}
