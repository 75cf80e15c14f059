package seed

import "github.com/harsha-k-cheruku/sde-interview-prep/domain"

type seedProblem struct {
	number     int
	title      string
	difficulty domain.Difficulty
	category   domain.Category
	slug       string
	blind75    bool
}

// problemCatalog is the default problem set: the Blind 75 core plus extra
// problems the weekly schedule references. Numbers are LeetCode numbers and
// must stay unique.
var problemCatalog = []seedProblem{
	// Arrays / strings
	{1, "Two Sum", domain.Easy, domain.Arrays, "two-sum", true},
	{121, "Best Time to Buy and Sell Stock", domain.Easy, domain.Arrays, "best-time-to-buy-and-sell-stock", true},
	{238, "Product of Array Except Self", domain.Medium, domain.Arrays, "product-of-array-except-self", true},
	{15, "3Sum", domain.Medium, domain.Arrays, "3sum", true},
	{11, "Container With Most Water", domain.Medium, domain.Arrays, "container-with-most-water", true},
	{3, "Longest Substring Without Repeating Characters", domain.Medium, domain.Arrays, "longest-substring-without-repeating-characters", true},
	{76, "Minimum Window Substring", domain.Hard, domain.Arrays, "minimum-window-substring", true},
	// Hash tables
	{242, "Valid Anagram", domain.Easy, domain.HashTables, "valid-anagram", true},
	{49, "Group Anagrams", domain.Medium, domain.HashTables, "group-anagrams", true},
	// Trees
	{104, "Maximum Depth of Binary Tree", domain.Easy, domain.Trees, "maximum-depth-of-binary-tree", true},
	{100, "Same Tree", domain.Easy, domain.Trees, "same-tree", true},
	{226, "Invert Binary Tree", domain.Easy, domain.Trees, "invert-binary-tree", true},
	{102, "Binary Tree Level Order Traversal", domain.Medium, domain.Trees, "binary-tree-level-order-traversal", true},
	{124, "Binary Tree Maximum Path Sum", domain.Hard, domain.Trees, "binary-tree-maximum-path-sum", true},
	// Linked lists
	{206, "Reverse Linked List", domain.Easy, domain.LinkedLists, "reverse-linked-list", true},
	{141, "Linked List Cycle", domain.Easy, domain.LinkedLists, "linked-list-cycle", true},
	{21, "Merge Two Sorted Lists", domain.Easy, domain.LinkedLists, "merge-two-sorted-lists", true},
	{23, "Merge k Sorted Lists", domain.Hard, domain.LinkedLists, "merge-k-sorted-lists", true},
	// Graphs
	{133, "Clone Graph", domain.Medium, domain.Graphs, "clone-graph", true},
	{207, "Course Schedule", domain.Medium, domain.Graphs, "course-schedule", true},
	{200, "Number of Islands", domain.Medium, domain.Graphs, "number-of-islands", true},
	// Dynamic programming
	{70, "Climbing Stairs", domain.Easy, domain.DynamicProgramming, "climbing-stairs", true},
	{198, "House Robber", domain.Medium, domain.DynamicProgramming, "house-robber", true},
	{300, "Longest Increasing Subsequence", domain.Medium, domain.DynamicProgramming, "longest-increasing-subsequence", true},
	{322, "Coin Change", domain.Medium, domain.DynamicProgramming, "coin-change", true},
	{139, "Word Break", domain.Medium, domain.DynamicProgramming, "word-break", true},
	// Extra core problems
	{217, "Contains Duplicate", domain.Easy, domain.HashTables, "contains-duplicate", false},
	{347, "Top K Frequent Elements", domain.Medium, domain.Heaps, "top-k-frequent-elements", false},
	{125, "Valid Palindrome", domain.Easy, domain.Arrays, "valid-palindrome", false},
	{56, "Merge Intervals", domain.Medium, domain.Greedy, "merge-intervals", false},
	{57, "Insert Interval", domain.Medium, domain.Greedy, "insert-interval", false},
	{435, "Non-overlapping Intervals", domain.Medium, domain.Greedy, "non-overlapping-intervals", false},
	{33, "Search in Rotated Sorted Array", domain.Medium, domain.BinarySearch, "search-in-rotated-sorted-array", false},
	{74, "Search a 2D Matrix", domain.Medium, domain.Matrix, "search-a-2d-matrix", false},
	{73, "Set Matrix Zeroes", domain.Medium, domain.Matrix, "set-matrix-zeroes", false},
	{167, "Two Sum II", domain.Medium, domain.BinarySearch, "two-sum-ii-input-array-is-sorted", false},
	{153, "Find Minimum in Rotated Sorted Array", domain.Medium, domain.BinarySearch, "find-minimum-in-rotated-sorted-array", false},
	{704, "Binary Search", domain.Easy, domain.BinarySearch, "binary-search", false},
	{20, "Valid Parentheses", domain.Easy, domain.StacksQueues, "valid-parentheses", false},
	{155, "Min Stack", domain.Medium, domain.StacksQueues, "min-stack", false},
	{739, "Daily Temperatures", domain.Medium, domain.StacksQueues, "daily-temperatures", false},
	{215, "Kth Largest Element in an Array", domain.Medium, domain.Heaps, "kth-largest-element-in-an-array", false},
	{208, "Implement Trie", domain.Medium, domain.Trees, "implement-trie-prefix-tree", false},
	{105, "Construct Binary Tree from Preorder and Inorder", domain.Medium, domain.Trees, "construct-binary-tree-from-preorder-and-inorder-traversal", false},
	{98, "Validate Binary Search Tree", domain.Medium, domain.Trees, "validate-binary-search-tree", false},
	{543, "Diameter of Binary Tree", domain.Easy, domain.Trees, "diameter-of-binary-tree", false},
	{572, "Subtree of Another Tree", domain.Easy, domain.Trees, "subtree-of-another-tree", false},
	{297, "Serialize and Deserialize Binary Tree", domain.Hard, domain.Trees, "serialize-and-deserialize-binary-tree", false},
	{235, "Lowest Common Ancestor of a BST", domain.Easy, domain.Trees, "lowest-common-ancestor-of-a-binary-search-tree", false},
	{19, "Remove Nth Node From End", domain.Medium, domain.LinkedLists, "remove-nth-node-from-end-of-list", false},
	{143, "Reorder List", domain.Medium, domain.LinkedLists, "reorder-list", false},
	{2, "Add Two Numbers", domain.Medium, domain.LinkedLists, "add-two-numbers", false},
	{22, "Generate Parentheses", domain.Medium, domain.StacksQueues, "generate-parentheses", false},
	{46, "Permutations", domain.Medium, domain.Greedy, "permutations", false},
	{78, "Subsets", domain.Medium, domain.Greedy, "subsets", false},
	{994, "Rotting Oranges", domain.Medium, domain.Graphs, "rotting-oranges", false},
	{417, "Pacific Atlantic Water Flow", domain.Medium, domain.Graphs, "pacific-atlantic-water-flow", false},
	{684, "Redundant Connection", domain.Medium, domain.Graphs, "redundant-connection", false},
	{131, "Palindrome Partitioning", domain.Medium, domain.DynamicProgramming, "palindrome-partitioning", false},
	{91, "Decode Ways", domain.Medium, domain.DynamicProgramming, "decode-ways", false},
	{62, "Unique Paths", domain.Medium, domain.DynamicProgramming, "unique-paths", false},
	{1143, "Longest Common Subsequence", domain.Medium, domain.DynamicProgramming, "longest-common-subsequence", false},
	{647, "Palindromic Substrings", domain.Medium, domain.DynamicProgramming, "palindromic-substrings", false},
	{371, "Sum of Two Integers", domain.Medium, domain.BitManipulation, "sum-of-two-integers", false},
	{136, "Single Number", domain.Easy, domain.BitManipulation, "single-number", false},
	{268, "Missing Number", domain.Easy, domain.BitManipulation, "missing-number", false},
}

// designTopics are the seeded system design exercises.
var designTopics = []string{
	"Twitter",
	"URL Shortener",
	"Instagram",
	"Uber",
	"Netflix",
	"Amazon",
	"WhatsApp",
	"Dropbox",
	"Shopping Cart (Walmart)",
	"Inventory Management (Walmart)",
	"Pricing Engine (Walmart)",
	"Search & Recommendation",
	"Rate Limiter",
	"Notification System",
	"Distributed Cache",
}

type seedWeek struct {
	number      int
	title       string
	description string
	goals       []string
}

var weekPlans = []seedWeek{
	{1, "Resume & Networking", "Foundational prep for outreach and resume polish.", []string{
		"Update resume", "Optimize LinkedIn", "Reach out to 5 engineers", "Apply to 10 companies"}},
	{2, "Behavioral Prep", "Build and rehearse STAR stories.", []string{
		"Brainstorm 20 STAR stories", "Write 10 full stories", "Record 3 stories", "Research companies"}},
	{3, "Arrays, Strings, Hash Tables", "Core data structure mastery.", []string{
		"Solve 20-25 problems", "Master two pointers", "Master sliding window", "Hash table patterns"}},
	{4, "Trees & Linked Lists", "Classic traversal and pointer techniques.", []string{
		"Solve 17-20 problems", "Master DFS/BFS", "Binary tree traversals", "Linked list manipulation"}},
	{5, "Graphs & Dynamic Programming", "Graph search + DP patterns.", []string{
		"Solve 14-16 problems", "Master graph DFS/BFS", "1D DP patterns", "2D DP patterns"}},
	{6, "Advanced Topics + Hard Problems", "Stretch into harder topics.", []string{
		"Solve 15 problems", "Master heaps", "Backtracking patterns", "5 hard problems"}},
	{7, "System Design Fundamentals", "Foundational system design practice.", []string{
		"Read DDIA Ch 1-3", "Study caching", "Database scaling", "Twitter + URL Shortener"}},
	{8, "Distributed Systems", "Distributed services at scale.", []string{
		"Message queues", "Microservices", "API design", "Instagram + Uber"}},
	{9, "Advanced System Design", "Scale + consistency topics.", []string{
		"Consistent hashing", "CAP theorem", "DDIA Ch 7-9", "Netflix + Amazon"}},
	{10, "E-commerce Systems", "Commerce flows and reliability.", []string{
		"Design shopping cart", "Inventory system", "Pricing engine", "Mock interviews"}},
	{11, "Intensive Mock Interviews", "High intensity practice week.", []string{
		"2 coding mocks", "1 system design mock", "1 behavioral mock", "Review"}},
	{12, "Final Prep & Polish", "Finalize for loops.", []string{
		"2 full-loop mocks", "Company research", "STAR stories", "Final LeetCode review"}},
}

type seedTask struct {
	title         string
	description   string
	taskType      string
	minutes       int
	problemNumber int // 0 when the task has no linked problem
}

type seedDay struct {
	week  int
	day   int
	name  string
	items []seedTask
}

var weekOneTasks = []seedDay{
	{1, 1, "Monday", []seedTask{
		{title: "Update Resume", taskType: "PREPARATION", minutes: 90},
		{title: "Create Achievement List", taskType: "PREPARATION", minutes: 60},
	}},
	{1, 2, "Tuesday", []seedTask{
		{title: "Optimize LinkedIn", taskType: "PREPARATION", minutes: 60},
		{title: "Research Target Companies", taskType: "PREPARATION", minutes: 90},
	}},
	{1, 3, "Wednesday", []seedTask{
		{title: "Reach Out to 5 Engineers", taskType: "NETWORKING", minutes: 60},
		{title: "Join Communities", taskType: "NETWORKING", minutes: 45},
	}},
	{1, 4, "Thursday", []seedTask{
		{title: "Apply to 10 Companies", taskType: "PREPARATION", minutes: 120},
		{title: "Setup Job Tracker", taskType: "PREPARATION", minutes: 30},
	}},
	{1, 5, "Friday", []seedTask{
		{title: "Solve Easy LeetCode", taskType: "LEETCODE", minutes: 90, problemNumber: 1},
		{title: "Review Data Structures", taskType: "REVIEW", minutes: 60},
	}},
	{1, 6, "Saturday", []seedTask{
		{title: "STAR Story Practice", taskType: "BEHAVIORAL", minutes: 60},
		{title: "Networking Follow-ups", taskType: "NETWORKING", minutes: 30},
	}},
	{1, 7, "Sunday", []seedTask{
		{title: "Week Reflection", taskType: "REVIEW", minutes: 30},
		{title: "Plan Next Week", taskType: "PREPARATION", minutes: 45},
	}},
}

var weekTwoStories = []string{
	"Write STAR story: leadership win",
	"Write STAR story: conflict resolution",
	"Write STAR story: technical challenge",
	"Write STAR story: failure and recovery",
	"Write STAR story: mentoring",
	"Write STAR story: customer obsession",
	"Write STAR story: ownership",
	"Write STAR story: bias for action",
	"Write STAR story: scalability",
	"Write STAR story: ambiguity",
	"Write STAR story: stakeholder management",
	"Write STAR story: product pivot",
	"Write STAR story: deadline crunch",
	"Write STAR story: cross-team delivery",
}

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// weekTwoTasks pairs one drafting task and one rehearsal task per day from
// the story list.
func weekTwoTasks() []seedDay {
	days := make([]seedDay, 0, len(dayNames))
	for dayIndex, name := range dayNames {
		start := dayIndex * 2
		days = append(days, seedDay{
			week: 2,
			day:  dayIndex + 1,
			name: name,
			items: []seedTask{
				{title: weekTwoStories[start], description: "Draft STAR story and capture key metrics.", taskType: "BEHAVIORAL", minutes: 60},
				{title: weekTwoStories[start+1], description: "Rehearse out loud and refine impact metrics.", taskType: "REVIEW", minutes: 45},
			},
		})
	}
	return days
}

var weekThreeTasks = []seedDay{
	{3, 1, "Monday", []seedTask{
		{title: "Two Sum", taskType: "LEETCODE", minutes: 30, problemNumber: 1},
		{title: "Best Time to Buy/Sell Stock", taskType: "LEETCODE", minutes: 30, problemNumber: 121},
		{title: "Contains Duplicate", taskType: "LEETCODE", minutes: 25, problemNumber: 217},
		{title: "Valid Anagram", taskType: "LEETCODE", minutes: 30, problemNumber: 242},
		{title: "Review Two Pointers", taskType: "REVIEW", minutes: 45},
	}},
	{3, 2, "Tuesday", []seedTask{
		{title: "Group Anagrams", taskType: "LEETCODE", minutes: 40, problemNumber: 49},
		{title: "Top K Frequent Elements", taskType: "LEETCODE", minutes: 45, problemNumber: 347},
		{title: "Product Except Self", taskType: "LEETCODE", minutes: 40, problemNumber: 238},
		{title: "Valid Palindrome", taskType: "LEETCODE", minutes: 25, problemNumber: 125},
		{title: "Review Hash Map Patterns", taskType: "REVIEW", minutes: 30},
	}},
	{3, 3, "Wednesday", []seedTask{
		{title: "Two Sum II", taskType: "LEETCODE", minutes: 30, problemNumber: 167},
		{title: "3Sum", taskType: "LEETCODE", minutes: 45, problemNumber: 15},
		{title: "Container With Most Water", taskType: "LEETCODE", minutes: 35, problemNumber: 11},
		{title: "Review Sliding Window", taskType: "REVIEW", minutes: 30},
		{title: "Longest Substring", taskType: "LEETCODE", minutes: 40, problemNumber: 3},
	}},
	{3, 4, "Thursday", []seedTask{
		{title: "Minimum Window Substring", taskType: "LEETCODE", minutes: 50, problemNumber: 76},
		{title: "Merge Intervals", taskType: "LEETCODE", minutes: 35, problemNumber: 56},
		{title: "Insert Interval", taskType: "LEETCODE", minutes: 35, problemNumber: 57},
		{title: "Review Interval Patterns", taskType: "REVIEW", minutes: 30},
		{title: "Set Matrix Zeroes", taskType: "LEETCODE", minutes: 35, problemNumber: 73},
	}},
	{3, 5, "Friday", []seedTask{
		{title: "Search a 2D Matrix", taskType: "LEETCODE", minutes: 30, problemNumber: 74},
		{title: "Search in Rotated Sorted Array", taskType: "LEETCODE", minutes: 35, problemNumber: 33},
		{title: "Binary Search", taskType: "LEETCODE", minutes: 25, problemNumber: 704},
		{title: "Review Binary Search", taskType: "REVIEW", minutes: 25},
		{title: "Non-overlapping Intervals", taskType: "LEETCODE", minutes: 35, problemNumber: 435},
	}},
	{3, 6, "Saturday", []seedTask{
		{title: "Valid Parentheses", taskType: "LEETCODE", minutes: 25, problemNumber: 20},
		{title: "Min Stack", taskType: "LEETCODE", minutes: 30, problemNumber: 155},
		{title: "Daily Temperatures", taskType: "LEETCODE", minutes: 35, problemNumber: 739},
		{title: "Review Stack Patterns", taskType: "REVIEW", minutes: 30},
		{title: "Generate Parentheses", taskType: "LEETCODE", minutes: 35, problemNumber: 22},
	}},
	{3, 7, "Sunday", []seedTask{
		{title: "Kth Largest Element", taskType: "LEETCODE", minutes: 35, problemNumber: 215},
		{title: "Clone Graph", taskType: "LEETCODE", minutes: 40, problemNumber: 133},
		{title: "Number of Islands", taskType: "LEETCODE", minutes: 40, problemNumber: 200},
		{title: "Review Graph BFS/DFS", taskType: "REVIEW", minutes: 30},
		{title: "Course Schedule", taskType: "LEETCODE", minutes: 40, problemNumber: 207},
	}},
}
