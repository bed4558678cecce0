package media

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dpetrovs/brewclub/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickedJPEG() models.PickedImage {
	return models.PickedImage{
		Path:     "/tmp/cat.jpg",
		FileName: "cat.jpg",
		MIMEType: "image/jpeg",
		Data:     []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02},
	}
}

func TestHostUploader_SendsMultipartFileAndPreset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "brewclub-avatars", r.FormValue("upload_preset"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "cat.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, pickedJPEG().Data, data)

		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": "https://media.example.com/cat.jpg"})
	}))
	defer srv.Close()

	u := NewHostUploader(srv.URL, "brewclub-avatars", nil)
	res, err := u.Upload(context.Background(), pickedJPEG())
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/cat.jpg", res.RemoteURL)
}

func TestHostUploader_HostFailure_ReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	u := NewHostUploader(srv.URL, "brewclub-avatars", nil)
	_, err := u.Upload(context.Background(), pickedJPEG())
	require.Error(t, err)
}

func TestHostUploader_SuccessWithoutSecureURL_IsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	u := NewHostUploader(srv.URL, "brewclub-avatars", nil)
	_, err := u.Upload(context.Background(), pickedJPEG())
	require.ErrorIs(t, err, ErrEmptyRemoteURL)
}

func TestHostUploader_UnnamedImage_GetsGeneratedFileName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.NotEmpty(t, header.Filename)

		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": "https://media.example.com/x"})
	}))
	defer srv.Close()

	img := pickedJPEG()
	img.FileName = ""

	u := NewHostUploader(srv.URL, "brewclub-avatars", nil)
	_, err := u.Upload(context.Background(), img)
	require.NoError(t, err)
}
