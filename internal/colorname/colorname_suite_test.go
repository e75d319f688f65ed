package colorname_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestColorname(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Colorname Suite")
}
