package eval

import (
	"fmt"

	"github.com/Xovval/diy-lang/pkg/environ"
	"github.com/Xovval/diy-lang/pkg/parser"
)

// preludeSource defines the standard library in DIY Lang.
const preludeSource = `
;; logic
(define not
  (lambda (b) (if b #f #t)))

(define or
  (lambda (a b) (if a #t (if b #t #f))))

(define and
  (lambda (a b) (if a (if b #t #f) #f)))

(define xor
  (lambda (a b) (and (or a b) (not (and a b)))))

;; comparison
(define >=
  (lambda (a b) (or (> a b) (eq a b))))

(define <=
  (lambda (a b) (not (> a b))))

(define <
  (lambda (a b) (> b a)))

;; sequences
(define sum
  (lambda (lst)
    (if (empty lst) 0 (+ (head lst) (sum (tail lst))))))

(define length
  (lambda (lst)
    (if (empty lst) 0 (+ 1 (length (tail lst))))))

(define append
  (lambda (xs ys)
    (if (empty xs)
        ys
        (cons (head xs) (append (tail xs) ys)))))

(define filter
  (lambda (pred lst)
    (cond ((empty lst) '())
          ((pred (head lst)) (cons (head lst) (filter pred (tail lst))))
          (#t (filter pred (tail lst))))))

(define map
  (lambda (f lst)
    (if (empty lst)
        '()
        (cons (f (head lst)) (map f (tail lst))))))

(define reverse
  (lambda (lst)
    (if (empty lst)
        lst
        (append (reverse (tail lst)) (cons (head lst) '())))))

(define range
  (lambda (start end)
    (if (> start end)
        '()
        (cons start (range (+ 1 start) end)))))

(define sort
  (lambda (lst)
    (if (empty lst)
        '()
        (let ((pivot (head lst))
              (rest (tail lst)))
          (append (sort (filter (lambda (x) (> pivot x)) rest))
                  (cons pivot (sort (filter (lambda (x) (not (> pivot x))) rest))))))))
`

// LoadPrelude defines the standard library functions (not, or, and, xor,
// >=, <=, <, sum, length, append, filter, map, reverse, range, sort) in env.
func LoadPrelude(ev *Evaluator, env *environ.Environ) error {
	exprs, err := parser.ParseString("prelude", preludeSource)
	if err != nil {
		return fmt.Errorf("prelude: %w", err)
	}
	for _, expr := range exprs {
		_, err := ev.Eval(expr, env)
		if err != nil {
			return fmt.Errorf("prelude: %w", err)
		}
	}
	return nil
}
