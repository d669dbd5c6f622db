package menu

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DownloadMenuImage: verilen URL'deki ürün fotoğrafını indirir
// itemID: Menü ürünü id'si (dosya adı bundan üretilir)
// savePath: Fotoğrafın kaydedileceği klasör yolu (örn: ./menu-images)
// Returns: Kaydedilen dosya yolu ve hata
func DownloadMenuImage(itemID uint, imageURL string, savePath string) (string, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return "", fmt.Errorf("görsel URL boş olamaz")
	}
	if !strings.HasPrefix(imageURL, "http://") && !strings.HasPrefix(imageURL, "https://") {
		return "", fmt.Errorf("görsel URL http(s) olmalı")
	}

	if err := os.MkdirAll(savePath, 0o755); err != nil {
		return "", fmt.Errorf("klasör oluşturulamadı: %v", err)
	}

	fileName := fmt.Sprintf("item_%d.jpg", itemID)
	filePath := filepath.Join(savePath, fileName)

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	req, err := http.NewRequest("GET", imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("HTTP isteği oluşturulamadı: %v", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP isteği başarısız: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP hatası: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("beklenmeyen içerik tipi: %s", contentType)
	}

	out, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("dosya oluşturulamadı: %v", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		// Yarım dosya bırakma
		os.Remove(filePath)
		return "", fmt.Errorf("görsel kaydedilemedi: %v", err)
	}

	return filePath, nil
}
