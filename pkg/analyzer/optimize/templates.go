package optimize

import "fmt"

// Canned example rewrites attached to suggestions. These are static,
// illustrative templates in C-family style; they are not generated from the
// analyzed input. Only the recursion templates are parameterized, and only by
// the extracted function name.

const exampleHashMapLookup = `// Before: O(n^2) scan per element
for (i = 0; i < n; i++) {
  for (j = 0; j < m; j++) {
    if (a[i] == b[j]) { matches++; }
  }
}

// After: O(n + m) with a hash map
seen = new Map();
for (j = 0; j < m; j++) { seen.set(b[j], true); }
for (i = 0; i < n; i++) {
  if (seen.has(a[i])) { matches++; }
}`

const exampleRowMajor = `// Traverse rows in the outer loop so memory is read sequentially
for (i = 0; i < rows; i++) {
  for (j = 0; j < cols; j++) {
    sum += matrix[i][j];
  }
}`

const exampleDeque = `// Before: shifts every element
items.unshift(value);        // O(n)

// After: constant-time front insertion
deque.pushFront(value);      // O(1)`

const exampleSet = `// Before: linear membership scan
if (!list.includes(value)) { list.push(value); }

// After: O(1) membership
if (!seen.has(value)) { seen.add(value); }`

const exampleBinarySearch = `lo = 0; hi = n - 1;
while (lo <= hi) {
  mid = (lo + hi) / 2;
  if (a[mid] == target) { return mid; }
  if (a[mid] < target) { lo = mid + 1; } else { hi = mid - 1; }
}`

const exampleStringSearch = `// Precompute the failure table once, then each search is O(n)
table = buildKmpTable(pattern);
index = kmpSearch(text, pattern, table);`

const exampleLibrarySort = `// Hand-rolled quadratic sort
for (i = 0; i < n; i++)
  for (j = 0; j < n - i - 1; j++)
    if (a[j] > a[j + 1]) { swap(a, j, j + 1); }

// Library sort, O(n log n)
a.sort((x, y) => x - y);`

const exampleStringBuffer = `// Before: copies the prefix every iteration
result = "";
for (i = 0; i < n; i++) { result += parts[i]; }

// After: single join at the end
chunks = [];
for (i = 0; i < n; i++) { chunks.push(parts[i]); }
result = chunks.join("");`

const exampleCharArray = `chars = [];
for (i = 0; i < s.length; i++) {
  chars.push(transform(s[i]));
}
out = chars.join("");`

const exampleAvoidCopy = `// Before: full duplicate just to read
snapshot = data.slice();
process(snapshot);

// After: pass the original, or a view of the needed range
process(data);`

const exampleTwoPointer = `// In-place with two indexes, O(1) extra space
left = 0; right = n - 1;
while (left < right) {
  swap(a, left, right);
  left++; right--;
}`

func memoizationExample(name string) string {
	return fmt.Sprintf(`cache = new Map();
function %[1]s(n) {
  if (cache.has(n)) { return cache.get(n); }
  // ... original computation ...
  cache.set(n, result);
  return result;
}`, name)
}

func iterativeExample(name string) string {
	return fmt.Sprintf(`// Iterative form of %[1]s: same result, no call stack growth
function %[1]s(n) {
  acc = base;
  while (n > 0) {
    acc = step(acc, n);
    n--;
  }
  return acc;
}`, name)
}
