package morph_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMorph(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Morph Suite")
}
