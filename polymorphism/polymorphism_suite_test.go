package polymorphism_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPolymorphismE2E(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Polymorphism End-to-End Suite")
}
