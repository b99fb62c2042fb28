package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption   = goerr.New("invalid option")
	ErrInvalidManifest = goerr.New("invalid manifest")
	ErrAPIRequest      = goerr.New("GitLab API request failed")
)
