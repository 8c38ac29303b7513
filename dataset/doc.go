// Package dataset loads labeled image sets for the classifier.
//
// What it offers:
//
//   - 🖼 Instance: one decoded image flattened to a normalized grayscale
//     vector, ready to feed a network input layer.
//   - 🏷 Labels from the filename prefix ("cat_image_0001.jpg" → "cat") or
//     from the holding directory's name.
//   - ⚖️ rec601 luminance (0.299·R + 0.587·G + 0.114·B) and inverted
//     normalization (255 − Y)/255, so ink is 1 and paper is 0.
//   - 📐 Nearest-neighbor rescale to a fixed square edge (default 128).
//   - ⚡ Concurrent decoding with a bounded errgroup; file order is
//     preserved regardless of decode order.
//
// Errors are package-level sentinels matched with errors.Is.
package dataset
