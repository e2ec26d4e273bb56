//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the development client binary.
func (Build) Client() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/skirmish", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the release client binary (fullscreen by default).
func (Build) Release() error {
	if _, err := executeCmd("go", withArgs("build", "-tags", "release", "-o", "bin/skirmish", "."), withStream()); err != nil {
		return err
	}
	return nil
}
