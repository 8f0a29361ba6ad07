package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func Test_Storage(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cloud Storage Source Package")
}

var _ = Context("Using a Cloud Storage Source:", func() {
	const (
		bucket = "slang-mirror"
		object = "slang-2024.1-linux-x86_64.zip"
	)
	var (
		server *httptest.Server
		src    *Source
		dir    string
		err    error
	)

	BeforeEach(func() {
		// Requests are matched on the object suffix so either the XML or JSON read path is served
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/"+object) {
				http.NotFound(w, r)
				return
			}
			fmt.Fprint(w, "archive-bytes")
		}))
		Expect(os.Setenv("STORAGE_EMULATOR_HOST", strings.TrimPrefix(server.URL, "http://"))).To(Succeed())

		src, err = NewSource(context.Background(), bucket)
		Expect(err).ToNot(HaveOccurred())

		dir, err = os.MkdirTemp(os.TempDir(), "slang-fetch-")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		Expect(src.Close()).To(Succeed())
		server.Close()
		Expect(os.Unsetenv("STORAGE_EMULATOR_HOST")).To(Succeed())
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("reports the bucket it reads from", func() {
		Expect(src.Bucket()).To(Equal(bucket))
	})

	When("DownloadObject() is called and", func() {
		When("the object exists", func() {
			It("writes its contents to the destination file", func() {
				dest := filepath.Join(dir, "slang-2024.1.zip")
				err = src.DownloadObject(context.Background(), object, dest)
				Expect(err).ToNot(HaveOccurred())

				contents, err := os.ReadFile(dest)
				Expect(err).ToNot(HaveOccurred())
				Expect(string(contents)).To(Equal("archive-bytes"))
			})
		})
		When("the object does not exist", func() {
			It("returns an error", func() {
				err = src.DownloadObject(context.Background(), "missing.zip", filepath.Join(dir, "missing.zip"))
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
