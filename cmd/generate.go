package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"react_scaffold_server/internal/api"
	"react_scaffold_server/internal/utils"
)

var (
	imagePath   string
	projectName string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a React project from a local image",
	Long: `Describe a local image and generate a React project from the description,
exactly as the upload endpoint does. The result is printed as JSON.

The project name defaults to react_project_<image name without extension>.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, aiGenerator, err := loadDependencies()
		if err != nil {
			return err
		}

		image, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("failed to read image %s: %w", imagePath, err)
		}

		described, err := aiGenerator.DescribeImage(cmd.Context(), image)
		if err != nil {
			return err
		}

		name := projectName
		if name == "" {
			name = utils.ProjectNameForUpload(imagePath)
		}

		project, err := aiGenerator.GenerateReactProject(cmd.Context(), described.Description, name)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(api.UploadImageResponse{
			Message:          "React project generated successfully",
			ImageDescription: described.Description,
			ProjectName:      project.Name,
			ProjectPath:      project.Path,
			Components:       project.Components,
		}, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&imagePath, "image", "", "path to the image to describe")
	generateCmd.Flags().StringVar(&projectName, "name", "", "project name (defaults to one derived from the image file name)")
	_ = generateCmd.MarkFlagRequired("image")
}
