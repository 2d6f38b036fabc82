package render

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed tint.kage
var defaultShader []byte

// DefaultTint is the color multiplier applied by the post-process pass.
var DefaultTint = [3]float32{0.88, 0.94, 1.0}

// ShaderSource returns the fragment shader at path, or the embedded tint
// shader when path is empty.
func ShaderSource(path string) ([]byte, error) {
	if path == "" {
		return defaultShader, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shader: %w", err)
	}
	return src, nil
}
