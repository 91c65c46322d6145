package config

import (
	"fmt"
	"os"
)

const defaultAvatarPath = "web/assets/avatar.png"

// AvatarConfig points at the bundled face image used when the caller does not
// upload one of their own.
type AvatarConfig struct {
	DefaultAvatarPath string
}

func GetAvatarConfig() (*AvatarConfig, error) {
	avatarPath := os.Getenv("AVATAR_PATH")
	if avatarPath == "" {
		avatarPath = defaultAvatarPath
	}

	if _, err := os.Stat(avatarPath); err != nil {
		return nil, fmt.Errorf("default avatar %s is not readable: %w", avatarPath, err)
	}

	return &AvatarConfig{
		DefaultAvatarPath: avatarPath,
	}, nil
}
