package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/davidwu111/extract-livp/internal/verify"
	"github.com/davidwu111/extract-livp/pkg/types"
)

// DefaultImageExtensions are the still-image formats a .livp archive may
// carry, in match order. Lower-case with leading dot.
var DefaultImageExtensions = []string{".heic", ".jpg", ".jpeg"}

// VideoExtension is the motion-video format inside a .livp archive.
const VideoExtension = ".mov"

// Extractor pulls the image and video members out of one .livp archive at
// a time and writes them under an allocated stem.
type Extractor struct {
	imageExts []string
	videoExt  string
	verifier  *verify.Verifier
	dryRun    bool
}

func New(imageExts []string, videoExt string, verifier *verify.Verifier, dryRun bool) *Extractor {
	lowered := make([]string, len(imageExts))
	for i, ext := range imageExts {
		lowered[i] = strings.ToLower(ext)
	}
	return &Extractor{
		imageExts: lowered,
		videoExt:  strings.ToLower(videoExt),
		verifier:  verifier,
		dryRun:    dryRun,
	}
}

// Extract opens the archive at archivePath, selects its image and video
// members, and writes them to outputDir as {stem}{imageExt} and
// {stem}{videoExt}. The caller guarantees stem does not collide with any
// existing output file. Failures are reported through the result value so
// one bad archive never aborts a batch.
func (e *Extractor) Extract(archivePath, stem, outputDir string) types.ExtractResult {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return types.ExtractResult{Status: types.ExtractCorrupt, Err: err}
		}
		return types.ExtractResult{Status: types.ExtractFailed, Err: err}
	}
	defer zr.Close()

	image, video := e.selectMembers(zr.File)
	if image == nil || video == nil {
		return types.ExtractResult{
			Status: types.ExtractSkippedIncomplete,
			Err: fmt.Errorf("missing image (%s) or %s inside archive",
				strings.Join(e.imageExts, ", "), e.videoExt),
		}
	}

	imageExt := matchExt(image.Name, e.imageExts)
	imageDest := filepath.Join(outputDir, stem+imageExt)
	videoDest := filepath.Join(outputDir, stem+e.videoExt)

	if e.dryRun {
		return types.ExtractResult{
			Status:       types.ExtractOK,
			ImagePath:    imageDest,
			VideoPath:    videoDest,
			BytesWritten: int64(image.UncompressedSize64) + int64(video.UncompressedSize64),
		}
	}

	written := int64(0)
	for _, pair := range []struct {
		member *zip.File
		dest   string
	}{
		{image, imageDest},
		{video, videoDest},
	} {
		n, err := e.copyMember(pair.member, pair.dest)
		written += n
		if err != nil {
			return types.ExtractResult{
				Status:       types.ExtractFailed,
				BytesWritten: written,
				Err:          fmt.Errorf("extracting %s: %w", path.Base(pair.member.Name), err),
			}
		}
	}

	return types.ExtractResult{
		Status:       types.ExtractOK,
		ImagePath:    imageDest,
		VideoPath:    videoDest,
		BytesWritten: written,
	}
}

// selectMembers scans the member list in stored order and picks the first
// image and the first video entry, ignoring hidden and metadata artifacts.
// Image and video selection are independent; scanning stops once both are
// found. First match wins even when the archive holds several candidates.
func (e *Extractor) selectMembers(files []*zip.File) (image, video *zip.File) {
	for _, f := range files {
		if isArtifact(f.Name) {
			continue
		}

		if image == nil && matchExt(f.Name, e.imageExts) != "" {
			image = f
		} else if video == nil && matchExt(f.Name, []string{e.videoExt}) != "" {
			video = f
		}

		if image != nil && video != nil {
			break
		}
	}
	return image, video
}

// copyMember streams one member to dest. Bytes go to a .part file first and
// the final name only appears after a complete, verified copy, so a failed
// extraction leaves no torn output behind.
func (e *Extractor) copyMember(member *zip.File, dest string) (int64, error) {
	src, err := member.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	partPath := dest + ".part"
	dst, err := os.Create(partPath)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(partPath)
		return n, err
	}

	if e.verifier != nil {
		if err := e.verifier.Verify(partPath, int64(member.UncompressedSize64), member.CRC32); err != nil {
			os.Remove(partPath)
			return n, err
		}
	}

	if err := os.Rename(partPath, dest); err != nil {
		os.Remove(partPath)
		return n, err
	}

	return n, nil
}
