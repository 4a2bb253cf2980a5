package lookup

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catIndex = `<ul>
<li><a href="/100">Continue</a></li>
<li><a href="/404">Not Found</a></li>
<li><a href="/about">About</a></li>
</ul>`

const dogIndex = `<div>
<a href="200-ok" class="dog">200</a>
<a href="418-im-a-teapot">418</a>
<a href="/faq">faq</a>
</div>`

func TestStatusPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cats", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte(catIndex)) })
	mux.HandleFunc("/dogs", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte(dogIndex)) })
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewStatusPages(srv.URL+"/cats", srv.URL+"/dogs")

	cats, err := s.CatCodes(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []int{100, 404}, cats)

	dogs, err := s.DogCodes(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []int{200, 418}, dogs)
}

func TestStatusPagesUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := NewStatusPages(srv.URL, srv.URL)

	_, err := s.CatCodes(t.Context())
	require.Error(t, err)
}
