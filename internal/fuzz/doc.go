// Package fuzztests houses Go fuzz harnesses for the comment pipeline
// (source bytes -> extractor -> parser -> squash -> rules). The goal is to
// smoke test robustness: no panics, and the structural invariants from
// internal/testkit hold for arbitrary inputs.
//
// Назначение: прогонять произвольные байты через extract и check.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/extract, internal/check, internal/comment,
// internal/config, internal/testkit.

package fuzztests
